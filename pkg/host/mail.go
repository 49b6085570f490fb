package host

import (
	"strings"

	"gopkg.in/gomail.v2"

	"ember/pkg/value"
)

func registerMail(r *Registry, cfg *Config) {
	var mailCfg *MailConfig
	if cfg != nil {
		mailCfg = &cfg.Mail
	}
	sendFn := makeMailSend(mailCfg)
	r.Register("mail.send", sendFn)
	r.Register("mail.send_template", makeMailSendTemplate(sendFn))
	r.Register("mail.queue", makeMailQueue(sendFn))
}

// buildMailMessage assembles a gomail message from the fields of a message
// map: to, from, subject, body and html. html wins over body when both are
// set.
func buildMailMessage(cfg MailConfig, fields *value.Map) (*gomail.Message, *value.Error) {
	var to, from, subject, body, html string
	for k, v := range fields.Pairs {
		s, ok := v.(*value.String)
		if !ok {
			continue
		}
		switch k {
		case "to":
			to = s.Value
		case "from":
			from = s.Value
		case "subject":
			subject = s.Value
		case "body":
			body = s.Value
		case "html":
			html = s.Value
		}
	}

	if to == "" {
		return nil, value.Errorf("mail message must have a \"to\" field")
	}
	if from == "" {
		from = cfg.From
		if from == "" {
			from = cfg.Username
		}
		if from == "" {
			from = "noreply@example.com"
		}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if html != "" {
		m.SetBody("text/html", html)
	} else {
		m.SetBody("text/plain", body)
	}
	return m, nil
}

func makeMailSend(cfg *MailConfig) func(args []value.Value) value.Value {
	return func(args []value.Value) value.Value {
		if len(args) != 1 {
			return wrongArgs(len(args), 1)
		}
		fields, errv := mapArg(args, 0)
		if errv != nil {
			return errv
		}

		mailCfg := MailConfig{}
		if cfg != nil {
			mailCfg = *cfg
		}
		if mailCfg.Host == "" {
			fromEnv, err := MailConfigFromEnv()
			if err != nil {
				return value.Errorf("%s", err)
			}
			mailCfg = fromEnv
		}

		m, errv := buildMailMessage(mailCfg, fields)
		if errv != nil {
			return errv
		}

		d := gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.Username, mailCfg.Password)
		if err := d.DialAndSend(m); err != nil {
			log.Errorf("mail send failed: %s", err)
			return value.Errorf("failed to send email: %s", err)
		}
		return value.TRUE
	}
}

// renderMailTemplate replaces {{key}} placeholders with values from data.
func renderMailTemplate(template string, data *value.Map) string {
	body := template
	for k, v := range data.Pairs {
		body = strings.ReplaceAll(body, "{{"+k+"}}", v.Inspect())
	}
	return body
}

func makeMailSendTemplate(send func([]value.Value) value.Value) func(args []value.Value) value.Value {
	return func(args []value.Value) value.Value {
		if len(args) != 2 {
			return wrongArgs(len(args), 2)
		}
		template, errv := stringArg(args, 0)
		if errv != nil {
			return errv
		}
		data, errv := mapArg(args, 1)
		if errv != nil {
			return errv
		}

		fields := &value.Map{Pairs: make(map[string]value.Value)}
		for _, k := range []string{"to", "from", "subject"} {
			if v, ok := data.Get(k); ok {
				fields.Set(k, v)
			}
		}
		fields.Set("body", &value.String{Value: renderMailTemplate(template, data)})

		return send([]value.Value{fields})
	}
}

// makeMailQueue sends in the background; failures only reach the log.
func makeMailQueue(send func([]value.Value) value.Value) func(args []value.Value) value.Value {
	return func(args []value.Value) value.Value {
		if len(args) != 1 {
			return wrongArgs(len(args), 1)
		}
		go func() {
			if result := send(args); result.Kind() == value.KindError {
				log.Errorf("queued mail failed: %s", result.Inspect())
			}
		}()
		return value.TRUE
	}
}
