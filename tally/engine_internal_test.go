// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/models"
)

func TestNextCount(t *testing.T) {
	tests := []struct {
		name    string
		current int
		found   bool
		delta   int
		want    int
		wantErr error
	}{
		{"first upvote", 0, false, 1, 1, nil},
		{"upvote existing", 2, true, 1, 3, nil},
		{"upvote from zero row", 0, true, 1, 1, nil},
		{"retract existing", 2, true, -1, 1, nil},
		{"retract last vote", 1, true, -1, 0, nil},
		{"retract at zero", 0, true, -1, 0, ErrNoContributionToRetract},
		{"retract negative row", -1, true, -1, 0, ErrNoContributionToRetract},
		{"retract without row", 0, false, -1, 0, ErrNoContributionToRetract},
		{"zero delta", 1, true, 0, 0, ErrInvalidDelta},
		{"large delta", 1, true, 5, 0, ErrInvalidDelta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextCount(models.Contribution{Count: tt.current}, tt.found, tt.delta)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
