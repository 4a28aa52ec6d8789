package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	in := strings.NewReader("abc\n0\n3\n17\nx\n12\nhelp\nwhirlpool\nSHA3-256\n")
	var out bytes.Buffer

	answers, err := New(in, &out).Ask()
	require.NoError(t, err)
	assert.Equal(t, &Answers{Cycles: 3, Difficulty: 12, Algorithm: "sha3_256"}, answers)

	text := out.String()
	assert.Contains(t, text, "Please enter an integer between [1 : n]")
	assert.Contains(t, text, "Please enter an integer greater than 0")
	assert.Equal(t, 2, strings.Count(text, "Please enter an integer between [1 : 16]"))
	assert.Contains(t, text, "Algorithms: \n\tblake2b\n")
	assert.Contains(t, text, "Unknown algorithm, try again!")
}

func TestAgain(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr error
		retries int
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "upper case", input: "Y\n", want: true},
		{name: "retries until valid", input: "yes\nmaybe\nn\n", want: false, retries: 2},
		{name: "closed input", input: "", wantErr: ErrAborted},
		{name: "closed after junk", input: "q\n", wantErr: ErrAborted, retries: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tt.input), &out).Again()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.retries, strings.Count(out.String(), `Please enter "y" or "n"`))
		})
	}
}

func TestCyclesAbortedOnEOF(t *testing.T) {
	_, err := New(strings.NewReader("nope\n"), &bytes.Buffer{}).Cycles()
	assert.True(t, errors.Is(err, ErrAborted))
}
