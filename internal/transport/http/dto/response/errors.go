package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrValidationFailed = ErrorResponse{
		Status: "error",
		Error:  "validation_failed",
	}

	ErrMessageNotFound = ErrorResponse{
		Status:  "error",
		Error:   "message_not_found",
		Details: "Message not found",
	}

	ErrProductNotFound = ErrorResponse{
		Status:  "error",
		Error:   "product_not_found",
		Details: "Product not found",
	}

	ErrImageNotFound = ErrorResponse{
		Status:  "error",
		Error:   "image_not_found",
		Details: "Gallery image not found",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status: "error",
		Error:  "authentication_failed",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
