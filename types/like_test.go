package types

import (
	"testing"

	"Xiaoji/models"
)

func TestLikeTarget_Valid(t *testing.T) {
	if !NoteTarget(1).Valid() {
		t.Fatal("note target with id should be valid")
	}
	if !CommentTarget(2).Valid() {
		t.Fatal("comment target with id should be valid")
	}
	if NoteTarget(0).Valid() {
		t.Fatal("zero note id should be invalid")
	}
	if CommentTarget(0).Valid() {
		t.Fatal("zero comment id should be invalid")
	}
	var zero LikeTarget
	if zero.Valid() {
		t.Fatal("zero value should be invalid")
	}
}

func TestLikeTarget_Row(t *testing.T) {
	row := NoteTarget(7).Row(3)
	if row.UserID != 3 {
		t.Fatalf("expected user id 3, got %d", row.UserID)
	}
	if row.TargetType != models.LikeTargetNote {
		t.Fatalf("expected target type %d, got %d", models.LikeTargetNote, row.TargetType)
	}
	if row.NoteID == nil || *row.NoteID != 7 {
		t.Fatal("expected note id 7")
	}
	if row.CommentID != nil {
		t.Fatal("comment id must stay null for note target")
	}

	row = CommentTarget(9).Row(4)
	if row.CommentID == nil || *row.CommentID != 9 {
		t.Fatal("expected comment id 9")
	}
	if row.NoteID != nil {
		t.Fatal("note id must stay null for comment target")
	}
}
