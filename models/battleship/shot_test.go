package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-console/internal/error"
	"github.com/stretchr/testify/assert"
)

func TestParseShot(t *testing.T) {
	tests := []struct {
		name        string
		shot        string
		expected    Coordinates
		expectedErr error
	}{
		{name: "top left", shot: "A1", expected: NewCoordinates(0, 0)},
		{name: "bottom right", shot: "H8", expected: NewCoordinates(7, 7)},
		{name: "ship cell", shot: "C4", expected: NewCoordinates(3, 2)},
		{name: "letter out of range", shot: "Z9", expectedErr: cerr.ErrOutOfBound},
		{name: "row zero", shot: "A0", expectedErr: cerr.ErrOutOfBound},
		{name: "row nine", shot: "B9", expectedErr: cerr.ErrOutOfBound},
		{name: "non latin letter", shot: "Ж1", expectedErr: cerr.ErrOutOfBound},
		{name: "too long", shot: "A10", expectedErr: cerr.ErrShotFormat},
		{name: "too short", shot: "A", expectedErr: cerr.ErrShotFormat},
		{name: "empty", shot: "", expectedErr: cerr.ErrShotFormat},
		{name: "digit first", shot: "1A", expectedErr: cerr.ErrShotFormat},
		{name: "leading space", shot: " A", expectedErr: cerr.ErrShotFormat},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			coords, err := ParseShot(test.shot)
			if test.expectedErr != nil {
				assert.True(t, errors.Is(err, test.expectedErr), "got: %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, coords)
			assert.Equal(t, test.shot, coords.Label())
		})
	}
}

func TestNormalizeShot(t *testing.T) {
	assert.Equal(t, "C3", NormalizeShot("c3"))
	assert.Equal(t, "EXIT", NormalizeShot("exit\r"))
	assert.Equal(t, " A1", NormalizeShot(" a1"))
	assert.Equal(t, "SS1", NormalizeShot("ß1"))
}

func TestParseNormalizedShot(t *testing.T) {
	_, err := ParseShot(NormalizeShot("ß1"))
	assert.True(t, errors.Is(err, cerr.ErrShotFormat), "got: %v", err)

	coords, err := ParseShot(NormalizeShot("h8"))
	assert.NoError(t, err)
	assert.Equal(t, NewCoordinates(7, 7), coords)
}
