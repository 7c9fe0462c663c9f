package discord

import "tscat/internal/domain"

// MessageContext is the catalog context that holds the bot's own messages.
// Catalogs may translate them like any other entry; the English text below
// is the source text and the fallback.
const MessageContext = "tscat"

// TranslateDomainError maps a domain error code to a user-facing message.
func TranslateDomainError(code string) string {
	switch code {
	case "malformed_catalog":
		return "The catalog file is malformed."
	case "duplicate_entry":
		return "The catalog contains duplicate entries."
	case "catalog_not_found":
		return "No stored catalog has that name."
	case "no_catalogs":
		return "No catalog is loaded."
	case "no_store":
		return "No catalog store is configured."
	default:
		return "Something went wrong."
	}
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(domain.Code(err))
}
