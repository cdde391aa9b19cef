package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-ps"

	"github.com/packlight/packlight-cli/internal/constants"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p *fakeProcess) Pid() int           { return p.pid }
func (p *fakeProcess) PPid() int          { return 0 }
func (p *fakeProcess) Executable() string { return p.executable }

func withTrayEnv(t *testing.T, lockfileContent string, executable string) {
	t.Helper()

	configDir := t.TempDir()
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	if lockfileContent != "" {
		path := filepath.Join(trayDir, constants.NotifierLockfileName)
		if err := os.WriteFile(path, []byte(lockfileContent), 0600); err != nil {
			t.Fatal(err)
		}
	}

	origConfigDir := userConfigDirFunc
	origFindProcess := findProcessFunc
	userConfigDirFunc = func() (string, error) { return configDir, nil }
	findProcessFunc = func(pid int) (ps.Process, error) {
		if executable == "" {
			return nil, nil
		}
		return &fakeProcess{pid: pid, executable: executable}, nil
	}
	t.Cleanup(func() {
		userConfigDirFunc = origConfigDir
		findProcessFunc = origFindProcess
	})
}

func TestNotify_PostsWebhook(t *testing.T) {
	var got WebhookPayload
	var gotSecret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Packlight-Secret")
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	withTrayEnv(t, u.Port()+"|4242|tray-secret", "packlight-tray")

	if err := New().Notify("Trip Starting Tomorrow!", "Your trip to Paris starts tomorrow! Time to start packing!"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}

	if gotSecret != "tray-secret" {
		t.Errorf("secret header = %q", gotSecret)
	}
	if got.Title != "Trip Starting Tomorrow!" || !strings.Contains(got.Body, "Paris") {
		t.Errorf("payload = %+v", got)
	}
	if got.DurationMs != constants.NotificationDurationMs {
		t.Errorf("duration = %d", got.DurationMs)
	}
}

func TestNotify_TrayNotRunning(t *testing.T) {
	withTrayEnv(t, "", "packlight-tray")

	err := New().Notify("title", "body")
	if err == nil || !strings.Contains(err.Error(), "not running") {
		t.Errorf("expected tray-not-running error, got %v", err)
	}
}

func TestNotify_MalformedLockfile(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing fields", "8080|1234"},
		{"bad port", "eighty|1234|secret"},
		{"port out of range", "70000|1234|secret"},
		{"bad pid", "8080|abc|secret"},
		{"empty secret", "8080|1234| "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			withTrayEnv(t, tc.content, "packlight-tray")
			if err := New().Notify("title", "body"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNotify_WrongProcess(t *testing.T) {
	withTrayEnv(t, "8080|1234|secret", "some-other-binary")

	err := New().Notify("title", "body")
	if err == nil || !strings.Contains(err.Error(), "not packlight-tray") {
		t.Errorf("expected process mismatch error, got %v", err)
	}
}

func TestNotify_DeadProcess(t *testing.T) {
	withTrayEnv(t, "8080|1234|secret", "")

	err := New().Notify("title", "body")
	if err == nil || !strings.Contains(err.Error(), "not running") {
		t.Errorf("expected dead process error, got %v", err)
	}
}

func TestNotify_WebhookRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad secret", http.StatusUnauthorized)
	}))
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	withTrayEnv(t, u.Port()+"|4242|wrong", "packlight-tray")

	err := New().Notify("title", "body")
	if err == nil || !strings.Contains(err.Error(), "status 401") {
		t.Errorf("expected status error, got %v", err)
	}
}
