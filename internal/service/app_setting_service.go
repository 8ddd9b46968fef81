package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/amalanberkah/internal/db"
	"golang.org/x/image/draw"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultAppName is used whenever no branding has been configured.
const DefaultAppName = "Amalan Marketer Berkah"

// faviconSize is the square edge favicons are normalized to.
const faviconSize = 64

// ErrInvalidImage is returned when a branding upload is not a decodable
// base64 image data URL.
var ErrInvalidImage = errors.New("invalid image data")

// AppSettings is the branding block read by every client on load.
type AppSettings struct {
	AppName    string `json:"appName"`
	AppLogo    string `json:"appLogo"`
	AppFavicon string `json:"appFavicon"`
}

// AppSettingsInput updates branding. Nil fields are left untouched so the
// admin can change one value without resending the images.
type AppSettingsInput struct {
	AppName    *string
	AppLogo    *string
	AppFavicon *string
}

// AppSettingService reads and writes the branding key-value store.
type AppSettingService struct {
	db *gorm.DB
}

// NewAppSettingService constructs an AppSettingService.
func NewAppSettingService(gdb *gorm.DB) *AppSettingService {
	return &AppSettingService{db: gdb}
}

var appSettingKeys = []string{
	db.SettingKeyAppName,
	db.SettingKeyAppLogo,
	db.SettingKeyAppFavicon,
}

// Get returns the stored settings with defaults filled in. Read failures
// fall back to defaults rather than breaking client bootstrap.
func (s *AppSettingService) Get() (AppSettings, error) {
	result := AppSettings{AppName: DefaultAppName}

	var records []db.AppSetting
	if err := s.db.Where("key IN ?", appSettingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load app settings: %w", err)
	}

	for _, record := range records {
		switch record.Key {
		case db.SettingKeyAppName:
			if strings.TrimSpace(record.Value) != "" {
				result.AppName = record.Value
			}
		case db.SettingKeyAppLogo:
			result.AppLogo = record.Value
		case db.SettingKeyAppFavicon:
			result.AppFavicon = record.Value
		}
	}

	return result, nil
}

// Update persists the provided branding fields. Images are validated as
// base64 data URLs; favicons are additionally downscaled to 64x64.
func (s *AppSettingService) Update(input AppSettingsInput) (AppSettings, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.AppName != nil {
			name := strings.TrimSpace(*input.AppName)
			if name == "" {
				name = DefaultAppName
			}
			if err := upsertAppSetting(tx, db.SettingKeyAppName, name); err != nil {
				return err
			}
		}

		if input.AppLogo != nil {
			logo := strings.TrimSpace(*input.AppLogo)
			if logo != "" {
				if _, err := decodeImageDataURL(logo); err != nil {
					return err
				}
			}
			if err := upsertAppSetting(tx, db.SettingKeyAppLogo, logo); err != nil {
				return err
			}
		}

		if input.AppFavicon != nil {
			favicon := strings.TrimSpace(*input.AppFavicon)
			if favicon != "" {
				normalized, err := normalizeFavicon(favicon)
				if err != nil {
					return err
				}
				favicon = normalized
			}
			if err := upsertAppSetting(tx, db.SettingKeyAppFavicon, favicon); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidImage) {
			return AppSettings{}, err
		}
		return AppSettings{}, fmt.Errorf("update app settings: %w", err)
	}

	return s.Get()
}

func upsertAppSetting(tx *gorm.DB, key, value string) error {
	setting := db.AppSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

// decodeImageDataURL accepts "data:image/...;base64,<payload>" or a bare
// base64 payload and decodes it into an image.
func decodeImageDataURL(value string) (image.Image, error) {
	payload := value
	if strings.HasPrefix(value, "data:") {
		idx := strings.Index(value, "base64,")
		if idx < 0 {
			return nil, ErrInvalidImage
		}
		payload = value[idx+len("base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidImage
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}
	return img, nil
}

// normalizeFavicon decodes the upload and re-encodes it as a 64x64 PNG
// data URL so every client gets a consistent icon payload.
func normalizeFavicon(value string) (string, error) {
	img, err := decodeImageDataURL(value)
	if err != nil {
		return "", err
	}

	scaled := image.NewRGBA(image.Rect(0, 0, faviconSize, faviconSize))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("encode favicon: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
