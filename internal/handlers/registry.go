package handlers

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	ListingHandler     *ListingHandler
	ApplicationHandler *ApplicationHandler
	MessageHandler     *MessageHandler
	FileHandler        *FileHandler
}
