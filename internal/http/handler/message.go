package handler

const (
	oopsErr         = "Oops! Something went wrong. Please try again later."
	unauthorizedMsg = "Please log in first!"
	forbiddenMsg    = "You don't have permission to do that!"
	notFoundMsg     = "Sorry, we couldn't find that page."

	usernameTakenMsg      = "Username taken. Please enter another username."
	emailTakenMsg         = "Email already registered."
	invalidCredentialsMsg = "Invalid username/password combination."

	registeredFlash = "Welcome, %s! Account successfully created!"
	loggedInFlash   = "Welcome back, %s!"
	loggedOutFlash  = "Goodbye!"
)
