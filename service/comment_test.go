package service

import (
	"testing"

	"Xiaoji/models"
)

func TestResolveThread_ReplyToRoot(t *testing.T) {
	root := &models.Comment{ID: 100, Level: models.CommentLevelRoot}

	level, rootID := resolveThread(root)
	if level != models.CommentLevelReply {
		t.Fatalf("expected level 2, got %d", level)
	}
	if rootID != 100 {
		t.Fatalf("expected root 100, got %d", rootID)
	}
}

func TestResolveThread_ReplyToReply(t *testing.T) {
	rootID := uint64(100)
	reply := &models.Comment{ID: 200, Level: models.CommentLevelReply, RootCommentID: &rootID}

	level, got := resolveThread(reply)
	if level != models.CommentLevelReply {
		t.Fatalf("expected level 2, got %d", level)
	}
	// 回复链压平：继承对方的根，而不是挂在对方下面
	if got != 100 {
		t.Fatalf("expected inherited root 100, got %d", got)
	}
}

func TestResolveThread_ChainStaysTwoLevels(t *testing.T) {
	root := &models.Comment{ID: 1, Level: models.CommentLevelRoot}

	prev := root
	for i := 0; i < 10; i++ {
		level, rootID := resolveThread(prev)
		if level != models.CommentLevelReply {
			t.Fatalf("round %d: expected level 2, got %d", i, level)
		}
		if rootID != root.ID {
			t.Fatalf("round %d: expected root %d, got %d", i, root.ID, rootID)
		}
		prev = &models.Comment{ID: uint64(i + 2), Level: level, RootCommentID: &rootID}
	}
}

func TestResolveThread_BrokenReplyFallsBack(t *testing.T) {
	// level=2 却丢失了 root_comment_id 的脏数据
	broken := &models.Comment{ID: 300, Level: models.CommentLevelReply}

	level, rootID := resolveThread(broken)
	if level != models.CommentLevelReply {
		t.Fatalf("expected level 2, got %d", level)
	}
	if rootID != 300 {
		t.Fatalf("expected fallback root 300, got %d", rootID)
	}
}
