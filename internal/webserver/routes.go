package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers, jwtSecret []byte) {
	alwaysRequireAuthentication := AlwaysRequireAuthentication(jwtSecret)
	allowIfNotLoggedIn := AllowIfNotLoggedIn(jwtSecret)

	app.Post("/sessions", allowIfNotLoggedIn, controllers.Auth.SignIn)
	app.Post("/logout", alwaysRequireAuthentication, controllers.Auth.SignOut)
	app.Post("/recover", allowIfNotLoggedIn, controllers.Auth.Request)
	app.Post("/reset-password", allowIfNotLoggedIn, controllers.Auth.ResetPassword)

	app.Post("/register", allowIfNotLoggedIn, controllers.Users.Register)

	usersGroup := app.Group("/users", alwaysRequireAuthentication, RequireAdmin)
	usersGroup.Get("/", controllers.Users.List)
	usersGroup.Post("/", controllers.Users.Create)
	usersGroup.Post("/delete", controllers.Users.Delete)
	usersGroup.Post("/resend-invite", controllers.Users.ResendInvite)
	usersGroup.Post("/role", controllers.Users.ChangeRole)
	usersGroup.Post("/password", controllers.Users.SetPassword)

	projectsGroup := app.Group("/projects", alwaysRequireAuthentication, RequireAdmin)
	projectsGroup.Get("/", controllers.Projects.List)
	projectsGroup.Post("/", controllers.Projects.Create)

	submissionsGroup := app.Group("/submissions", alwaysRequireAuthentication)
	submissionsGroup.Get("/", controllers.Submissions.Show)
	submissionsGroup.Post("/start", controllers.Submissions.Start)
	submissionsGroup.Post("/turn-in", controllers.Submissions.TurnIn)
	submissionsGroup.Post("/review", RequireAdmin, controllers.Submissions.Review)
}
