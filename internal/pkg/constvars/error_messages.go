package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"boolean":  "must be a boolean value",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientNotAuthorized                 = "not authorized, missing token"
	ErrClientTokenExpired                  = "token expired, login again"
	ErrClientTokenInvalid                  = "invalid token, login again"
	ErrClientAdminOnly                     = "forbidden: admin only"
	ErrClientEmailAlreadyExists            = "user with this email already exists, please login instead"
	ErrClientDoctorEmailAlreadyExists      = "doctor with this email already exists"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientAppointmentNotOwned           = "appointment not found or you are not authorized to delete it"
	ErrClientDoctorNotAvailable            = "doctor is not available"
	ErrClientSlotNotAvailable              = "slot not available"
	ErrClientDoctorImageRequired           = "doctor image is required"
	ErrClientImageUploadFailed             = "failed to upload image to storage"
	ErrClientStorageNotConfigured          = "image upload failed: storage not configured on server"
	ErrClientNoFieldsToUpdate              = "no valid fields provided for update"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request body validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevFailedToHashPassword     = "failed to hash the given plain password"

	ErrDevAuthGenerateToken         = "failed to sign and generate JWT"
	ErrDevAuthTokenMissing          = "no bearer token found on the request"
	ErrDevAuthTokenExpired          = "token is past its expiry claim"
	ErrDevAuthTokenInvalid          = "token is malformed or has an invalid signature"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthRoleMismatch          = "token role does not allow access to this resource"
	ErrDevInvalidCredentials        = "credentials do not match any known identity"
	ErrDevEmailAlreadyExists        = "a record with this email already exists"
	ErrDevAppointmentNotOwnedByUser = "appointment does not belong to the requesting patient"
	ErrDevSlotAlreadyTaken          = "slot reservation rejected, time label already present for date key"

	ErrDevDBFailedToFindDocument     = "mongo failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongo failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongo failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongo failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongo failed to iterate cursor over documents"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket %s"
	ErrDevMinioFailedToRemoveObject = "minio failed to remove object from bucket %s"
	ErrDevMinioNotConfigured        = "minio client is not configured but an image was supplied"

	ErrDevRedisGetData    = "redis failed to get data"
	ErrDevRedisSetData    = "redis failed to set data"
	ErrDevRedisDeleteData = "redis failed to delete data"

	ErrDevRabbitMQPublishMessage = "rabbitmq failed to publish message to queue %s"
)
