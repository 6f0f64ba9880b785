package email

import (
	"context"
	"encoding/json"
	"net/url"

	"pagecms/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                    string
	accountValidationTemplate string
	accountValidationBaseUrl  url.URL
	passwordResetTemplate     string
	passwordResetBaseUrl      url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	accountValidationTemplate string,
	accountValidationBaseUrl url.URL,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                       ses.NewFromConfig(awsConfig),
		sender:                    sender,
		accountValidationTemplate: accountValidationTemplate,
		accountValidationBaseUrl:  accountValidationBaseUrl,
		passwordResetTemplate:     passwordResetTemplate,
		passwordResetBaseUrl:      passwordResetBaseUrl,
	}
}

func (s *EmailSender) SendValidationToken(ctx context.Context, u user.User, token user.TokenValue) error {
	templateParamsBytes, err := json.Marshal(
		accountValidationTemplateParams{
			FirstName:     u.FirstName,
			ValidationUrl: s.accountValidationBaseUrl.JoinPath(string(token)).String(),
		},
	)
	if err != nil {
		return err
	}
	return s.sendTemplated(ctx, string(u.Email), s.accountValidationTemplate, string(templateParamsBytes))
}

func (s *EmailSender) SendPasswordResetToken(ctx context.Context, u user.User, token user.TokenValue) error {
	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			FirstName:        u.FirstName,
			PasswordResetUrl: s.passwordResetBaseUrl.JoinPath(string(token)).String(),
		},
	)
	if err != nil {
		return err
	}
	return s.sendTemplated(ctx, string(u.Email), s.passwordResetTemplate, string(templateParamsBytes))
}

func (s *EmailSender) sendTemplated(ctx context.Context, email, template, templateParams string) error {
	_, err := s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &template,
			TemplateData: &templateParams,
		},
	)
	return err
}

type accountValidationTemplateParams struct {
	FirstName     string `json:"firstName"`
	ValidationUrl string `json:"validationUrl"`
}

type passwordResetTemplateParams struct {
	FirstName        string `json:"firstName"`
	PasswordResetUrl string `json:"passwordResetUrl"`
}
