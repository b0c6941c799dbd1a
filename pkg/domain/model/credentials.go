package model

// KaggleCredentials is the username/key pair used by the legacy Kaggle API.
// It matches the layout of ~/.kaggle/kaggle.json.
type KaggleCredentials struct {
	Username string `json:"username"`
	Key      string `json:"key" masq:"secret"`
}

// IsValid reports whether both fields are present
func (c *KaggleCredentials) IsValid() bool {
	return c != nil && c.Username != "" && c.Key != ""
}
