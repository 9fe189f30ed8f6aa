package prompts

import (
	"errors"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInitBaseURL runs on first start to point the client at a backend.
func PromptInitBaseURL(current string) (string, error) {
	baseURL := current

	err := huh.NewInput().
		Title("Welcome to Money Manager! Where is the backend API?").
		Description("The base URL of the REST API, for example http://localhost:5000/api").
		Value(&baseURL).
		Validate(func(s string) error {
			u, err := url.Parse(strings.TrimSpace(s))
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return errors.New("enter an http or https URL")
			}
			return nil
		}).
		Run()

	if err != nil {
		return "", err
	}

	return strings.TrimRight(strings.TrimSpace(baseURL), "/"), nil
}
