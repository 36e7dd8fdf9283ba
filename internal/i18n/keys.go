// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthAccessDenied       = "auth.access_denied"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthEmailInUse         = "auth.email_in_use"
	KeyAuthWrongPassword      = "auth.wrong_password"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthProfileUpdated     = "auth.profile_updated"
	KeyAuthPasswordChanged    = "auth.password_changed"
	KeyAuthTokenRefreshed     = "auth.token_refreshed"
	KeyAuthUserNotFound       = "auth.user_not_found"

	// Contact form
	KeyContactRequired     = "contact.required_fields"
	KeyContactInvalidEmail = "contact.invalid_email"
	KeyContactSubmitted    = "contact.submitted"
	KeyContactSubmitFailed = "contact.submit_failed"
	KeyContactNotFound     = "contact.not_found"
	KeyContactUpdated      = "contact.updated"
	KeyContactDeleted      = "contact.deleted"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"
	KeyProductSlugUsed = "product.slug_in_use"

	// Categories
	KeyCategoryCreated     = "category.created"
	KeyCategoryUpdated     = "category.updated"
	KeyCategoryDeleted     = "category.deleted"
	KeyCategoryNotFound    = "category.not_found"
	KeyCategorySlugUsed    = "category.slug_in_use"
	KeyCategoryHasProducts = "category.has_products"

	// Media
	KeyMediaUploaded     = "media.uploaded"
	KeyMediaUpdated      = "media.updated"
	KeyMediaDeleted      = "media.deleted"
	KeyMediaNotFound     = "media.not_found"
	KeyMediaInvalidType  = "media.invalid_type"
	KeyMediaUploadFailed = "media.upload_failed"
	KeyMediaTooLarge     = "media.too_large"

	// Validation / generic
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"
	KeyServerError        = "server.error"
	KeyRouteNotFound      = "server.route_not_found"
	KeyRateLimited        = "server.rate_limited"
)
