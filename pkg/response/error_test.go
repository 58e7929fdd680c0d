package response

import (
	"errors"
	"fmt"
	"testing"
)

func TestBizErrorPredicates(t *testing.T) {
	if !IsBadRequest(NewBadRequest("参数错误")) {
		t.Fatal("expected bad request")
	}
	if !IsNotFound(NewNotFound("不存在")) {
		t.Fatal("expected not found")
	}
	if !IsConflict(NewConflict("冲突")) {
		t.Fatal("expected conflict")
	}
	if IsNotFound(NewBadRequest("参数错误")) {
		t.Fatal("bad request misclassified as not found")
	}
	if IsConflict(errors.New("plain error")) {
		t.Fatal("plain error misclassified as conflict")
	}
}

func TestBizErrorWrapped(t *testing.T) {
	// 包装一层后仍能识别
	err := fmt.Errorf("保存失败: %w", NewConflict("唯一键冲突"))
	if !IsConflict(err) {
		t.Fatal("wrapped conflict not detected")
	}
	var be *BizError
	if !errors.As(err, &be) || be.Msg != "唯一键冲突" {
		t.Fatal("wrapped BizError not extractable")
	}
}
