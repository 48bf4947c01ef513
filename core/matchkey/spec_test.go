package matchkey

import (
	"errors"
	"testing"

	"csvdiff/core/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Spec
	}{
		{"SingleIndex", "0", Spec{{Index: 0}}},
		{"IndexWithWidth", "0:8", Spec{{Index: 0, Width: 8}}},
		{"Composite", "0:8,3", Spec{{Index: 0, Width: 8}, {Index: 3}}},
		{"TrailingColon", "2:", Spec{{Index: 2}}},
		{"SpacesAroundFields", " 1 , 2:4 ", Spec{{Index: 1}, {Index: 2, Width: 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpec_Invalid(t *testing.T) {
	for _, text := range []string{"", "a", "-1", "0:x", "0:8:2", "1,,2", "0:-3"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseSpec(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, failure.ErrInvalidKeySpec))
		})
	}
}

func TestSpec_StringAndIndices(t *testing.T) {
	spec := Spec{{Index: 0, Width: 8}, {Index: 3}}
	assert.Equal(t, "0:8,3", spec.String())
	assert.Equal(t, []int{0, 3}, spec.Indices())
}
