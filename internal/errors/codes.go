package errors

// ErrorCode is the stable, client-facing identifier carried in every error envelope.
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
	AuthUserAlreadyExists      ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationInvalidID     ErrorCode = "VALIDATION_007"
	ValidationFileTooLarge  ErrorCode = "VALIDATION_008"
)

// Profile and follow error codes (PROFILE_*)
const (
	ProfileNotFound   ErrorCode = "PROFILE_001"
	ProfileSelfFollow ErrorCode = "PROFILE_002"
)

// Post error codes (POST_*)
const (
	PostNotFound     ErrorCode = "POST_001"
	PostNotPermitted ErrorCode = "POST_002"
)

// Comment error codes (COMMENT_*)
const (
	CommentNotFound     ErrorCode = "COMMENT_001"
	CommentNotPermitted ErrorCode = "COMMENT_002"
)

// Notification error codes (NOTIFICATION_*)
const (
	NotificationNotFound     ErrorCode = "NOTIFICATION_001"
	NotificationNotPermitted ErrorCode = "NOTIFICATION_002"
)

// Message error codes (MESSAGE_*)
const (
	MessageNotFound          ErrorCode = "MESSAGE_001"
	MessageNotPermitted      ErrorCode = "MESSAGE_002"
	MessageRecipientNotFound ErrorCode = "MESSAGE_003"
	MessageDeleted           ErrorCode = "MESSAGE_004"
	AttachmentNotFound       ErrorCode = "MESSAGE_005"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerEntryNotFound     ErrorCode = "LEDGER_001"
	LedgerEntryNotPermitted ErrorCode = "LEDGER_002"
	LedgerInvalidCategory   ErrorCode = "LEDGER_003"
)

// Calendar error codes (EVENT_*)
const (
	EventNotFound     ErrorCode = "EVENT_001"
	EventNotPermitted ErrorCode = "EVENT_002"
	EventInvalidRange ErrorCode = "EVENT_003"
)

// Game error codes (GAME_*)
const (
	GameInvalidHand  ErrorCode = "GAME_001"
	GameInvalidGuess ErrorCode = "GAME_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemStorageError       ErrorCode = "SYSTEM_007"
	SystemRouteNotFound      ErrorCode = "SYSTEM_008"
)

var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthAccountLocked:          "Account is locked or disabled",
	AuthUserAlreadyExists:      "A user with this email or username already exists",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidID:     "Invalid identifier format",
	ValidationFileTooLarge:  "Uploaded file exceeds the allowed size",

	ProfileNotFound:   "Profile not found",
	ProfileSelfFollow: "You cannot follow yourself",

	PostNotFound:     "Post not found",
	PostNotPermitted: "Only the author can modify this post",

	CommentNotFound:     "Comment not found",
	CommentNotPermitted: "Only the author can modify this comment",

	NotificationNotFound:     "Notification not found",
	NotificationNotPermitted: "Notification belongs to another user",

	MessageNotFound:          "Message not found",
	MessageNotPermitted:      "You are not allowed to perform this action on the message",
	MessageRecipientNotFound: "Recipient not found",
	MessageDeleted:           "Message has been deleted",
	AttachmentNotFound:       "Attachment not found",

	LedgerEntryNotFound:     "Ledger entry not found",
	LedgerEntryNotPermitted: "Ledger entry belongs to another user",
	LedgerInvalidCategory:   "Category must be income or expense",

	EventNotFound:     "Event not found",
	EventNotPermitted: "Event belongs to another user",
	EventInvalidRange: "End time must not precede start time",

	GameInvalidHand:  "Hand must be one of グー, チョキ, パー",
	GameInvalidGuess: "Guess must be a number between 1 and 10",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemStorageError:       "File storage error",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for code, or a generic one for unknown codes.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
