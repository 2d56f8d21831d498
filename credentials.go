package unfollow

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Credentials holds the four OAuth1 secrets of one account.
type Credentials struct {
	APIKey       string `env:"API_KEY" validate:"required"`
	APISecret    string `env:"API_SECRET" validate:"required"`
	AccessToken  string `env:"ACCESS_TOKEN" validate:"required"`
	AccessSecret string `env:"ACCESS_SECRET" validate:"required"`
}

var validate = newValidator()

// newValidator reports fields under their environment variable names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// LoadCredentials reads the credentials through getenv, usually os.Getenv.
func LoadCredentials(getenv func(string) string) Credentials {
	return Credentials{
		APIKey:       strings.TrimSpace(getenv("API_KEY")),
		APISecret:    strings.TrimSpace(getenv("API_SECRET")),
		AccessToken:  strings.TrimSpace(getenv("ACCESS_TOKEN")),
		AccessSecret: strings.TrimSpace(getenv("ACCESS_SECRET")),
	}
}

// Validate returns an *AuthenticationError naming every missing variable.
func (c Credentials) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		return &AuthenticationError{Reason: "missing credential " + strings.Join(missing, ", "), Err: err}
	}
	return &AuthenticationError{Reason: err.Error(), Err: err}
}

// LogValue implements slog.LogValuer without exposing secrets.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_key", mask(c.APIKey)),
		slog.String("access_token", mask(c.AccessToken)),
	)
}

func (c Credentials) String() string {
	return "Credentials{api_key=" + mask(c.APIKey) + ", access_token=" + mask(c.AccessToken) + "}"
}

func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", 4)
}
