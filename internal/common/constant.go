package common

// Durable storage keys. KeyLegacyToken mirrors KeyAccessToken so older
// tooling that still reads auth_token keeps working.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyLegacyToken  = "auth_token"
	KeyUser         = "user"

	// KeyJournalSnapshot holds the serialized journal store snapshot.
	KeyJournalSnapshot = "ejournal"
)
