package config

// SafeErrorMessage hides internal error detail from clients in release
// mode. In debug mode (or before configuration is loaded, treated as a
// development environment) it returns the raw error text.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
