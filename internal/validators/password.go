package validators

const MinPasswordLength = 8

// CheckPassword enforces the registration password rules: minimum length and
// a matching confirmation field. Returns a field→message map on failure.
func CheckPassword(password, confirmation string) map[string]string {
	if len(password) < MinPasswordLength {
		return map[string]string{
			"password": "The password must be at least 8 characters.",
		}
	}
	if password != confirmation {
		return map[string]string{
			"password": "The password confirmation does not match.",
		}
	}
	return nil
}
