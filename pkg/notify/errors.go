package notify

import "fmt"

// MissingConfigError reports a required configuration value that was not
// set in the process environment.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("%s environment variable not set", e.Key)
}

// DeliveryError reports a non-success response from the webhook,
// carrying the status code and response body text.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed: %d - %s", e.StatusCode, e.Body)
}
