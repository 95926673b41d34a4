package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto the HTTP
// error taxonomy: 400 validation, 401 unauthorized, 403 forbidden,
// 404 not found, 409 conflict, 500 everything else.
var (
	ErrUserNotFound    = errors.New("user_not_found")
	ErrInvalidPassword = errors.New("invalid_password")
	ErrInvalidToken    = errors.New("invalid_token")
	ErrTokenExpired    = errors.New("token_expired")
	ErrPasswordChanged = errors.New("password_changed")

	ErrDuplicateUser  = errors.New("duplicate_user")
	ErrOwnerSignupOff = errors.New("owner_signup_disabled")

	// ErrForbidden reports an authenticated caller acting on a resource that
	// isn't theirs (wrong owner, wrong tenant).
	ErrForbidden = errors.New("forbidden")

	ErrDormNotFound        = errors.New("dorm_not_found")
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrContractNotFound    = errors.New("contract_not_found")
	ErrBillNotFound        = errors.New("bill_not_found")
	ErrRepairNotFound      = errors.New("repair_not_found")

	ErrRoomNotAvailable  = errors.New("room_not_available")
	ErrRoomNameTaken     = errors.New("room_name_taken")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrDuplicateBill     = errors.New("duplicate_bill")
	ErrInvalidMonth      = errors.New("invalid_month")
	ErrNoActiveContract  = errors.New("no_active_contract")

	// ErrUnsupportedUpload rejects presign requests for non-image content.
	ErrUnsupportedUpload = errors.New("unsupported_upload_type")
)
