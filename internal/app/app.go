package app

import (
	"fmt"
	"net/http"
	"pagecms/internal/app/deps"
	"pagecms/internal/app/services"
	"pagecms/internal/http/handlers/auth"
	activateuser "pagecms/internal/http/handlers/auth/activate_user"
	loginwithemail "pagecms/internal/http/handlers/auth/log_in_with_email"
	logout "pagecms/internal/http/handlers/auth/log_out"
	resetpassword "pagecms/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "pagecms/internal/http/handlers/auth/send_password_reset_token"
	signupwithemail "pagecms/internal/http/handlers/auth/sign_up_with_email"
	createpage "pagecms/internal/http/handlers/pages/create_page"
	deletepage "pagecms/internal/http/handlers/pages/delete_page"
	getpagebyslug "pagecms/internal/http/handlers/pages/get_page_by_slug"
	listallpages "pagecms/internal/http/handlers/pages/list_all_pages"
	listpages "pagecms/internal/http/handlers/pages/list_pages"
	updatepage "pagecms/internal/http/handlers/pages/update_page"
	changepassword "pagecms/internal/http/handlers/user/change_password"
	deleteuser "pagecms/internal/http/handlers/user/delete_user"
	listusers "pagecms/internal/http/handlers/user/list_users"
	me "pagecms/internal/http/handlers/user/me"
	updateuser "pagecms/internal/http/handlers/user/update_user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail, isTestMode))
	authRouter.Method(http.MethodPost, "/activate", activateuser.New(s.ActivateUser))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	profileRouter.Method(http.MethodPut, "/password", changepassword.New(s.ChangePassword))

	pagesRouter := chi.NewRouter()
	pagesRouter.Method(http.MethodGet, "/", listpages.New(s.ListPublishedPages))
	pagesRouter.Method(http.MethodGet, "/{slug}", getpagebyslug.New(s.GetPageBySlug))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.SetAuthTokenToContext)
	adminRouter.Method(http.MethodGet, "/pages", listallpages.New(s.ListAllPages))
	adminRouter.Method(http.MethodPost, "/pages", createpage.New(s.CreatePage))
	adminRouter.Method(http.MethodPatch, "/pages/{pageID:[0-9]+}", updatepage.New(s.UpdatePage))
	adminRouter.Method(http.MethodDelete, "/pages/{pageID:[0-9]+}", deletepage.New(s.DeletePage))
	adminRouter.Method(http.MethodGet, "/users", listusers.New(s.ListUsers))
	adminRouter.Method(http.MethodPatch, "/users/{userID:[0-9]+}", updateuser.New(s.UpdateUser))
	adminRouter.Method(http.MethodDelete, "/users/{userID:[0-9]+}", deleteuser.New(s.DeleteUser))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/pages", pagesRouter)
	router.Mount("/admin", adminRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
