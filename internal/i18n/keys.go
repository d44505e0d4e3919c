// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyInternalError    = "common.internal_error"
	KeyRouteNotFound    = "common.route_not_found"
	KeyMethodNotAllowed = "common.method_not_allowed"
	KeyRateLimited      = "common.rate_limited"
	KeyInvalidID        = "common.invalid_id"
	KeyInvalidBody      = "common.invalid_body"
	KeyEmptyUpdate      = "common.empty_update"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"
	KeyValidationNumber   = "validation.number"
	KeyValidationUnknown  = "validation.unknown_field"

	// Conflicts
	KeyConflictReference = "conflict.reference"
	KeyConflictDuplicate = "conflict.duplicate"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthUserNotFound       = "auth.user_not_found"
	KeyAuthSuspended          = "auth.suspended"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthRegisterFailed     = "auth.register_failed"
	KeyAuthLoginFailed        = "auth.login_failed"
	KeyAdminAccessDenied      = "auth.admin_access_denied"

	// Admin
	KeyAdminStatsFailed       = "admin.stats_failed"
	KeyAdminUsersFailed       = "admin.users_failed"
	KeyAdminCannotModifyAdmin = "admin.cannot_modify_admin"
	KeyAdminUserSuspended     = "admin.user_suspended"
	KeyAdminUserUnsuspended   = "admin.user_unsuspended"

	// Products
	KeyProductCreated        = "product.created"
	KeyProductUpdated        = "product.updated"
	KeyProductNotFound       = "product.not_found"
	KeyProductInvalidID      = "product.invalid_id"
	KeyProductMissingFields  = "product.missing_fields"
	KeyProductNoImages       = "product.no_images"
	KeyProductInvalidStatus  = "product.invalid_status"
	KeyProductCreateFailed   = "product.create_failed"
	KeyProductFetchFailed    = "product.fetch_failed"
	KeyProductRetrieveFailed = "product.retrieve_failed"
	KeyProductUpdateFailed   = "product.update_failed"
	KeyProductDeleteFailed   = "product.delete_failed"
	KeyProductOutOfStock     = "product.out_of_stock"

	// Catalog
	KeyCatalogCreated      = "catalog.created"
	KeyCatalogUpdated      = "catalog.updated"
	KeyCatalogNotFound     = "catalog.not_found"
	KeyCatalogFetchFailed  = "catalog.fetch_failed"
	KeyCatalogCreateFailed = "catalog.create_failed"
	KeyCatalogUpdateFailed = "catalog.update_failed"
	KeyCatalogDeleteFailed = "catalog.delete_failed"

	// Orders
	KeyOrderCreated           = "order.created"
	KeyOrderUpdated           = "order.updated"
	KeyOrderCancelled         = "order.cancelled"
	KeyOrderNotFound          = "order.not_found"
	KeyOrderInvalidTransition = "order.invalid_transition"
	KeyOrderNotCancellable    = "order.not_cancellable"
	KeyOrderCreateFailed      = "order.create_failed"
	KeyOrderFetchFailed       = "order.fetch_failed"
	KeyOrderUpdateFailed      = "order.update_failed"

	// File Upload
	KeyFileInvalidType  = "file.invalid_type"
	KeyFileTooLarge     = "file.too_large"
	KeyFileUploadFailed = "file.upload_failed"
	KeyFileMalformed    = "file.malformed"
)
