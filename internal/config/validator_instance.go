package config

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/chisom-ui/chisom/internal/hexcolor"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sshRepoPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return hexcolor.Valid(fl.Field().String())
		})

		_ = v.RegisterValidation("repo_url", func(fl validator.FieldLevel) bool {
			urlStr := fl.Field().String()
			if urlStr == "" {
				return true
			}
			if strings.TrimSpace(urlStr) == "" {
				return false
			}

			if parsed, err := url.Parse(urlStr); err == nil {
				scheme := strings.ToLower(parsed.Scheme)
				if (scheme == "http" || scheme == "https") && parsed.Host != "" {
					return true
				}
			}

			return sshRepoPattern.MatchString(urlStr)
		})

		validateInst = v
	})

	return validateInst
}
