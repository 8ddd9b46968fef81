package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/amalanberkah/internal/db"
)

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 0x1b, G: 0x8a, B: 0x5a, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAppSettingsDefaults(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAppSettingService(db.DB)
	settings, err := svc.Get()
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	if settings.AppName != DefaultAppName {
		t.Fatalf("expected default app name %q, got %q", DefaultAppName, settings.AppName)
	}
	if settings.AppLogo != "" || settings.AppFavicon != "" {
		t.Fatalf("expected empty branding images, got %#v", settings)
	}
}

func TestAppSettingsUpdatePartialFields(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAppSettingService(db.DB)

	logo := pngDataURL(t, 120, 40)
	name := "Tim Berkah Jaya"
	saved, err := svc.Update(AppSettingsInput{AppName: &name, AppLogo: &logo})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if saved.AppName != name {
		t.Fatalf("expected app name %q, got %q", name, saved.AppName)
	}
	if saved.AppLogo != logo {
		t.Fatal("expected logo stored as provided")
	}

	// Updating the name alone leaves the images untouched.
	renamed := "Marketer Amanah"
	saved, err = svc.Update(AppSettingsInput{AppName: &renamed})
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if saved.AppName != renamed {
		t.Fatalf("expected renamed app, got %q", saved.AppName)
	}
	if saved.AppLogo != logo {
		t.Fatal("expected logo to survive a name-only update")
	}
}

func TestAppSettingsBlankNameFallsBack(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAppSettingService(db.DB)
	blank := "   "
	saved, err := svc.Update(AppSettingsInput{AppName: &blank})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if saved.AppName != DefaultAppName {
		t.Fatalf("expected fallback to %q, got %q", DefaultAppName, saved.AppName)
	}
}

func TestAppSettingsFaviconNormalized(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAppSettingService(db.DB)
	favicon := pngDataURL(t, 256, 256)
	saved, err := svc.Update(AppSettingsInput{AppFavicon: &favicon})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if !strings.HasPrefix(saved.AppFavicon, "data:image/png;base64,") {
		t.Fatalf("expected png data url, got %.40q", saved.AppFavicon)
	}

	payload := strings.TrimPrefix(saved.AppFavicon, "data:image/png;base64,")
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decode favicon payload: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode favicon png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Fatalf("expected 64x64 favicon, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestAppSettingsRejectsInvalidImage(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewAppSettingService(db.DB)

	garbage := "data:image/png;base64,aGVsbG8gZHVuaWE="
	if _, err := svc.Update(AppSettingsInput{AppLogo: &garbage}); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage for undecodable logo, got %v", err)
	}

	notBase64 := "data:image/png;base64,%%%"
	if _, err := svc.Update(AppSettingsInput{AppFavicon: &notBase64}); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage for bad base64, got %v", err)
	}
}
