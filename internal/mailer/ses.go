// Package mailer sends resume documents by email through AWS SES.
package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"resume-builder/internal/model"
)

type Mailer struct {
	client *ses.Client
	from   string
}

// New loads the default AWS credential chain for the region.
func New(ctx context.Context, region, from string) (*Mailer, error) {
	if from == "" {
		return nil, fmt.Errorf("mailer: sender address is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &Mailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

// Send delivers a plain-text email.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body:    &types.Body{Text: &types.Content{Data: aws.String(body)}},
		},
	})
	return err
}

// SendResume renders the document as a readable text summary and mails it.
func (m *Mailer) SendResume(ctx context.Context, to, subject string, r model.Resume) error {
	if subject == "" {
		subject = fmt.Sprintf("Resume: %s", r.PersonalInfo.FullName)
	}
	return m.Send(ctx, to, subject, RenderText(r))
}

// RenderText formats a resume as plain text for the email body.
func RenderText(r model.Resume) string {
	out := fmt.Sprintf("%s\n%s\n%s | %s | %s\n",
		r.PersonalInfo.FullName, r.PersonalInfo.JobTitle,
		r.PersonalInfo.Email, r.PersonalInfo.Phone, r.PersonalInfo.Location)
	if r.PersonalInfo.Summary != "" {
		out += "\n" + r.PersonalInfo.Summary + "\n"
	}
	if len(r.Experience) > 0 {
		out += "\nEXPERIENCE\n"
		for _, e := range r.Experience {
			end := e.EndDate
			if e.Current {
				end = "Present"
			}
			out += fmt.Sprintf("- %s, %s (%s - %s)\n  %s\n", e.Position, e.Company, e.StartDate, end, e.Description)
		}
	}
	if len(r.Education) > 0 {
		out += "\nEDUCATION\n"
		for _, e := range r.Education {
			out += fmt.Sprintf("- %s, %s (%s - %s)\n", e.Degree, e.School, e.StartDate, e.EndDate)
		}
	}
	if len(r.Skills) > 0 {
		out += "\nSKILLS\n"
		for i, s := range r.Skills {
			if i > 0 {
				out += ", "
			}
			out += s
		}
		out += "\n"
	}
	return out
}
