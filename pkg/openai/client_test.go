package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIngredients(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "commas",
			input: "chicken, rice, garlic",
			want:  []string{"chicken", "rice", "garlic"},
		},
		{
			name:  "and-separated",
			input: "chicken and rice and garlic",
			want:  []string{"chicken", "rice", "garlic"},
		},
		{
			name:  "newlines and semicolons",
			input: "flour\nmilk; eggs",
			want:  []string{"flour", "milk", "eggs"},
		},
		{
			name:  "blank segments dropped",
			input: "flour,, ,milk",
			want:  []string{"flour", "milk"},
		},
		{
			name:  "single ingredient",
			input: "butter",
			want:  []string{"butter"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SplitIngredients(tc.input))
		})
	}
}

func TestParseIngredients_NilClientFallsBack(t *testing.T) {
	t.Parallel()

	var c *Client
	got, err := c.ParseIngredients("chicken, rice")
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken", "rice"}, got)
}

func TestNew_EmptyKeyReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, New("", "", "gpt-4o-mini"))
}

func TestCleanJSONResponse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `["egg"]`, cleanJSONResponse("```json\n[\"egg\"]\n```"))
	assert.Equal(t, `["egg"]`, cleanJSONResponse(`["egg"]`))
}
