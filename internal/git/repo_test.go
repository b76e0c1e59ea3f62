package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
		{"config", "tag.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// setupTestRepo creates a git repo with main branch, initial commit, and git config.
// Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)
	repoPath := filepath.Join(tmpDir, "test-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	configureTestRepo(t, repoPath)

	readme := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := runGit(ctx, repoPath, "add", "README.md"); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", "Initial commit"); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	return repoPath
}

func TestGetShortCommitHash(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	hash, err := GetShortCommitHash(ctx, repoPath)
	if err != nil {
		t.Fatalf("GetShortCommitHash failed: %v", err)
	}
	full, err := outputLine(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		t.Fatalf("rev-parse HEAD failed: %v", err)
	}
	if len(hash) < 4 || full[:len(hash)] != hash {
		t.Errorf("hash = %q, want a prefix of %q", hash, full)
	}
}

func TestGetShortCommitHash_NoCommits(t *testing.T) {
	t.Parallel()
	repoPath := filepath.Join(resolveTempDir(t), "empty")
	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	if _, err := GetShortCommitHash(ctx, repoPath); err == nil {
		t.Error("GetShortCommitHash on empty repo = nil error, want error")
	}
}

func TestGetAbbrevRef(t *testing.T) {
	t.Parallel()

	t.Run("on main", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)

		ref, err := GetAbbrevRef(context.Background(), repoPath)
		if err != nil {
			t.Fatalf("GetAbbrevRef failed: %v", err)
		}
		if ref != "main" {
			t.Errorf("ref = %q, want main", ref)
		}
	})

	t.Run("on feature branch", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		ctx := context.Background()

		if err := runGit(ctx, repoPath, "checkout", "-b", "feature-x"); err != nil {
			t.Fatalf("failed to create branch: %v", err)
		}
		ref, err := GetAbbrevRef(ctx, repoPath)
		if err != nil {
			t.Fatalf("GetAbbrevRef failed: %v", err)
		}
		if ref != "feature-x" {
			t.Errorf("ref = %q, want feature-x", ref)
		}
	})

	t.Run("detached", func(t *testing.T) {
		t.Parallel()
		repoPath := setupTestRepo(t)
		ctx := context.Background()

		if err := runGit(ctx, repoPath, "checkout", "--detach"); err != nil {
			t.Fatalf("failed to detach: %v", err)
		}
		ref, err := GetAbbrevRef(ctx, repoPath)
		if err != nil {
			t.Fatalf("GetAbbrevRef failed: %v", err)
		}
		if ref != "HEAD" {
			t.Errorf("ref = %q, want HEAD", ref)
		}
	})
}

func TestGetTopLevel(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	sub := filepath.Join(repoPath, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	root, err := GetTopLevel(context.Background(), sub)
	if err != nil {
		t.Fatalf("GetTopLevel failed: %v", err)
	}
	if root != repoPath {
		t.Errorf("root = %q, want %q", root, repoPath)
	}
}

func TestGetTopLevel_NotARepo(t *testing.T) {
	t.Parallel()
	if _, err := GetTopLevel(context.Background(), resolveTempDir(t)); err == nil {
		t.Error("GetTopLevel outside a repo = nil error, want error")
	}
}

func TestGetLastTag(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if _, err := GetLastTag(ctx, repoPath); err == nil {
		t.Error("GetLastTag without tags = nil error, want error")
	}

	if err := runGit(ctx, repoPath, "tag", "v1.2.3"); err != nil {
		t.Fatalf("failed to tag: %v", err)
	}
	tag, err := GetLastTag(ctx, repoPath)
	if err != nil {
		t.Fatalf("GetLastTag failed: %v", err)
	}
	if tag != "v1.2.3" {
		t.Errorf("tag = %q, want v1.2.3", tag)
	}
}

func TestGetConfig(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if err := runGit(ctx, repoPath, "config", "new-branch.pattern", "{type}/{title:slugify}"); err != nil {
		t.Fatalf("failed to set config: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"user.name", "Test User"},
		{"new-branch.pattern", "{type}/{title:slugify}"},
		{"new-branch.unset", ""},
	}
	for _, tt := range tests {
		got, err := GetConfig(ctx, repoPath, tt.key)
		if err != nil {
			t.Errorf("GetConfig(%q) error = %v", tt.key, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GetConfig(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestGetConfig_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := GetConfig(ctx, "", "user.name"); err != context.Canceled {
		t.Errorf("GetConfig error = %v, want context.Canceled", err)
	}
}

func TestRepo(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()
	r := Repo{Dir: repoPath}

	if ref, err := r.AbbrevRef(ctx); err != nil || ref != "main" {
		t.Errorf("AbbrevRef() = %q, %v; want main", ref, err)
	}
	if root, err := r.TopLevel(ctx); err != nil || root != repoPath {
		t.Errorf("TopLevel() = %q, %v; want %q", root, err, repoPath)
	}
	if name, err := r.Config(ctx, "user.name"); err != nil || name != "Test User" {
		t.Errorf("Config(user.name) = %q, %v; want Test User", name, err)
	}
}
