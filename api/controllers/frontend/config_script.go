package frontend

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/angelmondragon/inventory-insights/api/responses"
	"github.com/angelmondragon/inventory-insights/pkg/config"
	"github.com/angelmondragon/inventory-insights/pkg/env"
	pkgerrors "github.com/angelmondragon/inventory-insights/pkg/errors"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
)

type firebaseConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId,omitempty"`
	AppID             string `json:"appId,omitempty"`
	MeasurementID     string `json:"measurementId,omitempty"`
}

const scriptFooter = `
firebase.initializeApp(firebaseConfig);

const auth = firebase.auth();
const db = firebase.firestore();
`

// ConfigScript serves the client bootstrap script. The environment is read on every request.
func ConfigScript(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cfg := currentFirebaseConfig()
		if cfg.APIKey == "" || cfg.ProjectID == "" {
			logg.Warn(ctx, "firebase config requested without "+config.EnvGoogleAPIKey+" or "+config.EnvProjectID)
		}

		body, err := renderConfigScript(cfg)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build firebase config"))
			return
		}
		responses.WriteJavaScript(w, body)
	}
}

func currentFirebaseConfig() firebaseConfig {
	project := env.Get(config.EnvProjectID, "")
	cfg := firebaseConfig{
		APIKey:            env.Get(config.EnvGoogleAPIKey, ""),
		ProjectID:         project,
		MessagingSenderID: env.Get(config.EnvMessagingSenderID, ""),
		AppID:             env.Get(config.EnvFirebaseAppID, ""),
		MeasurementID:     env.Get(config.EnvFirebaseMeasureID, ""),
	}
	if project != "" {
		cfg.AuthDomain = project + ".firebaseapp.com"
		cfg.StorageBucket = project + ".firebasestorage.app"
	}
	return cfg
}

// renderConfigScript embeds the config as a JSON object literal so values cannot escape their strings.
func renderConfigScript(cfg firebaseConfig) ([]byte, error) {
	literal, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString("const firebaseConfig = ")
	buf.Write(literal)
	buf.WriteString(";\n")
	buf.WriteString(scriptFooter)
	return buf.Bytes(), nil
}
