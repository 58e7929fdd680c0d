package service

import (
	"context"
	"testing"

	"Xiaoji/dao"
	"Xiaoji/models"
	"Xiaoji/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return db, mock
}

// 本地不可达地址，缓存更新失败只会打日志，不影响主流程
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

// 并发双取消：删除行的请求没删到（另一个事务先提交），计数必须跳过
func TestToggleLike_CancelLoserSkipsCounters(t *testing.T) {
	db, mock := newMockDB(t)
	s := &LikeService{
		DB:         db,
		LikeDAO:    dao.NewLikeDAO(db),
		NoteDAO:    dao.NewNoteDAO(db),
		CommentDAO: dao.NewCommentDAO(db),
		Redis:      deadRedis(),
	}

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "note_id", "comment_id", "target_type"}).
			AddRow(99, 1, 7, nil, models.LikeTargetNote))
	mock.ExpectExec("DELETE FROM `likes`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	liked, err := s.ToggleLike(context.Background(), 1, types.NoteTarget(7))
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if liked {
		t.Fatal("expected liked=false after cancel")
	}
	// 没有任何 UPDATE `notes` / `users` 期望：若计数被执行这里会报 unmet/unexpected
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("counters must be skipped when the delete hit no row: %v", err)
	}
}

// 正常取消：删到了行，笔记点赞数与作者获赞收藏数同事务 -1
func TestToggleLike_CancelAppliesCounters(t *testing.T) {
	db, mock := newMockDB(t)
	s := &LikeService{
		DB:         db,
		LikeDAO:    dao.NewLikeDAO(db),
		NoteDAO:    dao.NewNoteDAO(db),
		CommentDAO: dao.NewCommentDAO(db),
		Redis:      deadRedis(),
	}

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `likes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "note_id", "comment_id", "target_type"}).
			AddRow(99, 1, 7, nil, models.LikeTargetNote))
	mock.ExpectExec("DELETE FROM `likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `notes` SET `like_count`=GREATEST").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `notes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(7, 3))
	mock.ExpectExec("UPDATE `users` SET `like_collect_count`=GREATEST").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := s.ToggleLike(context.Background(), 1, types.NoteTarget(7))
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if liked {
		t.Fatal("expected liked=false after cancel")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected counter updates in the same transaction: %v", err)
	}
}

func TestToggleCollect_CancelLoserSkipsCounters(t *testing.T) {
	db, mock := newMockDB(t)
	s := &CollectService{
		DB:            db,
		CollectionDAO: dao.NewCollectionDAO(db),
		NoteDAO:       dao.NewNoteDAO(db),
		Redis:         deadRedis(),
	}

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `collections`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "note_id", "status"}).
			AddRow(5, 1, 7, 1))
	mock.ExpectExec("DELETE FROM `collections`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	collected, err := s.ToggleCollect(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("toggle collect: %v", err)
	}
	if collected {
		t.Fatal("expected collected=false after cancel")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("counters must be skipped when the delete hit no row: %v", err)
	}
}

// 关注状态翻转：CAS 没翻到（status 已被并发请求改走），计数必须跳过
func TestFollowApplyStatus_FlipLoserSkipsCounters(t *testing.T) {
	db, mock := newMockDB(t)
	s := &FollowService{
		DB:        db,
		FollowDAO: dao.NewFollowDAO(db),
		UserDAO:   dao.NewUsers(db),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `follows`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "follower_id", "following_id", "status"}).
			AddRow(10, 1, 2, models.FollowStatusActive))
	mock.ExpectExec("UPDATE `follows`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	following, err := s.applyStatus(context.Background(), 1, 2, models.FollowStatusCancelled)
	if err != nil {
		t.Fatalf("apply status: %v", err)
	}
	if following {
		t.Fatal("expected following=false after cancel")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("counters must be skipped when the status flip hit no row: %v", err)
	}
}

func TestFollowApplyStatus_FlipAppliesCounters(t *testing.T) {
	db, mock := newMockDB(t)
	s := &FollowService{
		DB:        db,
		FollowDAO: dao.NewFollowDAO(db),
		UserDAO:   dao.NewUsers(db),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `follows`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "follower_id", "following_id", "status"}).
			AddRow(10, 1, 2, models.FollowStatusActive))
	mock.ExpectExec("UPDATE `follows`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users` SET `follow_count`=GREATEST").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users` SET `fans_count`=GREATEST").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	following, err := s.applyStatus(context.Background(), 1, 2, models.FollowStatusCancelled)
	if err != nil {
		t.Fatalf("apply status: %v", err)
	}
	if following {
		t.Fatal("expected following=false after cancel")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected both user counters in the same transaction: %v", err)
	}
}
