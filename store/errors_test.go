package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestParseID(t *testing.T) {
	_, err := parseID("Student", "65f0c0ffee0000000000beef")
	require.NoError(t, err)

	_, err = parseID("Student", "abc")
	require.ErrorIs(t, err, ErrInvalidID)
	require.Contains(t, err.Error(), `"abc"`)
	require.Contains(t, err.Error(), `"Student"`)
}

func TestClassify(t *testing.T) {
	require.NoError(t, classify("Course", "insert", nil))

	err := classify("Course", "find x", mongo.ErrNoDocuments)
	require.ErrorIs(t, err, ErrNotFound)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: test.students index: email_1 dup key: { email: "a@b.c" }`,
	}}}
	err = classify("Student", "insert", dup)
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.Contains(t, err.Error(), "E11000")

	boom := errors.New("connection reset")
	err = classify("Task", "find", boom)
	require.ErrorIs(t, err, boom)
	require.False(t, errors.Is(err, ErrNotFound))
}
