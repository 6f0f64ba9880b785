package services

import (
	"pagecms/internal/app/deps"
	drl "pagecms/internal/core/domain/rate_limiter"
	"pagecms/internal/core/services"
	activateuser "pagecms/internal/core/services/activate_user"
	"pagecms/internal/core/services/auth"
	changepassword "pagecms/internal/core/services/change_password"
	createpage "pagecms/internal/core/services/create_page"
	deletepage "pagecms/internal/core/services/delete_page"
	deleteuser "pagecms/internal/core/services/delete_user"
	getpagebyslug "pagecms/internal/core/services/get_page_by_slug"
	getuserbysessiontoken "pagecms/internal/core/services/get_user_by_session_token"
	listpages "pagecms/internal/core/services/list_pages"
	listusers "pagecms/internal/core/services/list_users"
	loginwithemail "pagecms/internal/core/services/log_in_with_email"
	logout "pagecms/internal/core/services/log_out"
	ratelimiting "pagecms/internal/core/services/rate_limiting"
	resetpassword "pagecms/internal/core/services/reset_password"
	sendpasswordresettoken "pagecms/internal/core/services/send_password_reset_token"
	signupwithemail "pagecms/internal/core/services/sign_up_with_email"
	updatepage "pagecms/internal/core/services/update_page"
	updateuser "pagecms/internal/core/services/update_user"
)

type Services struct {
	SignUpWithEmail        services.Service[signupwithemail.Input, signupwithemail.Result]
	ActivateUser           services.Service[activateuser.Input, activateuser.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                 services.Service[logout.Input, logout.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	ChangePassword         services.Service[changepassword.Input, changepassword.Result]
	GetUserBySessionToken  services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]

	GetPageBySlug      services.Service[getpagebyslug.Input, getpagebyslug.Result]
	ListPublishedPages services.Service[listpages.Input, listpages.Result]

	CreatePage   services.Service[createpage.Input, createpage.Result]
	UpdatePage   services.Service[updatepage.Input, updatepage.Result]
	DeletePage   services.Service[deletepage.Input, deletepage.Result]
	ListAllPages services.Service[listpages.Input, listpages.Result]

	ListUsers  services.Service[listusers.Input, listusers.Result]
	UpdateUser services.Service[updateuser.Input, updateuser.Result]
	DeleteUser services.Service[deleteuser.Input, deleteuser.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.NewWithValidationTokenSending(
		deps.Logger,
		deps.ValidationTokenSender,
		signupwithemail.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.TokenGenerator,
			deps.Config.ValidationTokenTTL,
			deps.Now,
		),
	)
	s.ActivateUser = activateuser.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.SessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.NewWithResetTokenSending(
			deps.Logger,
			deps.PasswordResetTokenSender,
			sendpasswordresettoken.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.TokenGenerator,
				deps.Config.PasswordResetTokenTTL,
				deps.Now,
			),
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.SessionRepository,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.Now,
		),
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)

	s.GetPageBySlug = getpagebyslug.New(
		deps.Logger,
		deps.PageRepository,
	)
	s.ListPublishedPages = listpages.New(
		deps.Logger,
		deps.PageRepository,
	)

	s.CreatePage = auth.WithAuthentication(
		deps.SessionRepository,
		auth.WithAdminRole(
			createpage.New(
				deps.Logger,
				deps.PageRepository,
				deps.Now,
			),
		),
	)
	s.UpdatePage = auth.WithAuthentication(
		deps.SessionRepository,
		auth.WithAdminRole(
			updatepage.New(
				deps.Logger,
				deps.PageRepository,
				deps.Now,
			),
		),
	)
	s.DeletePage = auth.WithAuthentication(
		deps.SessionRepository,
		auth.WithAdminRole(
			deletepage.New(
				deps.Logger,
				deps.PageRepository,
			),
		),
	)
	s.ListAllPages = auth.WithAuthentication(
		deps.SessionRepository,
		auth.WithAdminRole(
			listpages.New(
				deps.Logger,
				deps.PageRepository,
			),
		),
	)

	s.ListUsers = auth.WithAuthentication(
		deps.SessionRepository,
		auth.WithAdminRole(
			listusers.New(
				deps.Logger,
				deps.UserRepository,
			),
		),
	)
	s.UpdateUser = auth.WithAuthentication(
		deps.SessionRepository,
		auth.WithAdminRole(
			updateuser.New(
				deps.Logger,
				deps.UserRepository,
				deps.Now,
			),
		),
	)
	s.DeleteUser = auth.WithAuthentication(
		deps.SessionRepository,
		auth.WithAdminRole(
			deleteuser.New(
				deps.Logger,
				deps.UserRepository,
			),
		),
	)

	return s
}
