package service

import (
	"errors"
	"testing"

	"Xiaoji/models"

	"gorm.io/gorm"
)

func TestCommentCountDelta(t *testing.T) {
	cases := []struct {
		name     string
		old, new uint8
		want     int64
	}{
		{"pending to published", models.CommentStatusPending, models.CommentStatusPublished, 1},
		{"deleted to published", models.CommentStatusDeleted, models.CommentStatusPublished, 1},
		{"published to pending", models.CommentStatusPublished, models.CommentStatusPending, -1},
		{"published to deleted", models.CommentStatusPublished, models.CommentStatusDeleted, -1},
		{"published to published", models.CommentStatusPublished, models.CommentStatusPublished, 0},
		{"pending to deleted", models.CommentStatusPending, models.CommentStatusDeleted, 0},
		{"deleted to pending", models.CommentStatusDeleted, models.CommentStatusPending, 0},
	}

	for _, tc := range cases {
		if got := commentCountDelta(tc.old, tc.new); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestIsDuplicateKey(t *testing.T) {
	if isDuplicateKey(nil) {
		t.Fatal("nil is not a duplicate key error")
	}
	if !isDuplicateKey(gorm.ErrDuplicatedKey) {
		t.Fatal("gorm.ErrDuplicatedKey must be detected")
	}
	if !isDuplicateKey(errors.New("Error 1062 (23000): Duplicate entry '3-7' for key 'uk_user_note'")) {
		t.Fatal("mysql duplicate entry message must be detected")
	}
	if isDuplicateKey(errors.New("connection refused")) {
		t.Fatal("unrelated error misclassified as duplicate key")
	}
}
