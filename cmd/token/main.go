// Command token emite tokens de acesso para as rotas administrativas do dashboard.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/mje-dashboard/internal/config"
	"github.com/vfg2006/mje-dashboard/internal/domain"
	"github.com/vfg2006/mje-dashboard/internal/usecases/authenticating"
)

func main() {
	subject := pflag.StringP("subject", "s", "", "identificação de quem vai usar o token (ex.: e-mail)")
	role := pflag.StringP("role", "r", domain.RoleAdmin, "role do token: admin ou viewer")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).GenerateToken(*subject, *role)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	logrus.WithFields(logrus.Fields{
		"subject": *subject,
		"role":    *role,
		"ttl":     cfg.Auth.TokenTTL.String(),
	}).Info("Token gerado")

	fmt.Println(token)
}
