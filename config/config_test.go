package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	content := `
app:
  env: test
  debug: true
server:
  http: 9090
mysql:
  host: db.local
  port: 3307
  username: u
  password: p
  database: xiaoji
jwt:
  secret: s3cret
  access_expire: 600
`
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	conf := New(path)
	if !conf.Debug() {
		t.Fatal("expected debug mode")
	}
	if conf.Server.Http != 9090 {
		t.Fatalf("expected http port 9090, got %d", conf.Server.Http)
	}
	if conf.Jwt.Secret != "s3cret" {
		t.Fatalf("unexpected jwt secret: %s", conf.Jwt.Secret)
	}
}

func TestMySQLDsn(t *testing.T) {
	m := &MySQL{
		Host:     "db.local",
		Port:     3307,
		Username: "u",
		Password: "p",
		Database: "xiaoji",
	}
	want := "u:p@tcp(db.local:3307)/xiaoji?charset=utf8mb4&parseTime=True&loc=Local"
	if got := m.Dsn(); got != want {
		t.Fatalf("dsn mismatch:\n got  %s\n want %s", got, want)
	}
}
