package debug

import (
	"net/http"
	"os"

	"github.com/MonkyMars/gecho"
)

var mediaEnvKeys = []string{
	"NEXT_PUBLIC_CLOUDINARY_CLOUD_NAME",
	"NEXT_PUBLIC_CLOUDINARY_UPLOAD_PRESET",
	"CLOUDINARY_CLOUD_NAME",
	"CLOUDINARY_UPLOAD_PRESET",
}

// GetEnv reports which media variables are present, never their values
func (drm *DebugRoutesManager) GetEnv(w http.ResponseWriter, r *http.Request) {
	envs := make(map[string]bool, len(mediaEnvKeys))
	for _, key := range mediaEnvKeys {
		envs[key] = os.Getenv(key) != ""
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"ok": true, "envs": envs}),
		gecho.Send(),
	)
}
