// Command consola is the terminal administrative console for the committee
// membership system. It talks to the REST backend and keeps the session
// token on disk between runs.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/comite-ambiental/consola-admin/internal/console"
	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/service"
	"github.com/comite-ambiental/consola-admin/internal/infrastructure/config"
	"github.com/comite-ambiental/consola-admin/internal/infrastructure/rest"
	"github.com/comite-ambiental/consola-admin/internal/infrastructure/tokenstore"
	"github.com/comite-ambiental/consola-admin/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuración inválida:", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.PrettyLogs})

	store := tokenstore.NewFileStore(cfg.TokenPath)
	base := rest.New(cfg.APIBaseURL, cfg.HTTPTimeout, store, log)

	authClient := rest.NewAuthClient(base)
	groupClient := rest.NewGroupClient(base)
	eventClient := rest.NewEventClient(base)
	typeClient := rest.NewTypeClient(base)
	adminClient := rest.NewAdminGroupClient(authClient)

	session := service.NewSessionService(store, authClient, log)
	session.Bootstrap()

	forms := console.NewFormValidator()
	out := os.Stdout

	authScreen := console.NewAuthScreen(session, authClient, forms, out, log)
	groupsScreen := console.NewGroupsScreen(session, groupClient, forms, out, log)
	eventsScreen := console.NewEventsScreen(session, eventClient, forms, out, log)
	typesScreen := console.NewTypesScreen(session, typeClient, forms, out, log)
	adminsScreen := console.NewAdminsScreen(session, adminClient, forms, out, log)

	app := cli.NewApp()
	app.Name = "consola"
	app.Usage = "consola de administración del Comité de Gestión Ambiental"
	app.Version = "1.0.0"

	app.Commands = []cli.Command{
		{
			Name:  "login",
			Usage: "iniciar sesión",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "usuario, u"},
				cli.StringFlag{Name: "password, p"},
			},
			Action: func(c *cli.Context) error {
				return authScreen.Login(ctx, c.String("usuario"), c.String("password"))
			},
		},
		{
			Name:  "logout",
			Usage: "cerrar la sesión activa",
			Action: func(c *cli.Context) error {
				authScreen.Logout()
				return nil
			},
		},
		{
			Name:  "whoami",
			Usage: "mostrar el usuario y rol de la sesión",
			Action: func(c *cli.Context) error {
				authScreen.WhoAmI()
				return nil
			},
		},
		{
			Name:  "register",
			Usage: "registrarse como miembro del comité",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "usuario"},
				cli.StringFlag{Name: "password"},
				cli.StringFlag{Name: "confirmar"},
				cli.StringFlag{Name: "nombre"},
				cli.StringFlag{Name: "telefono"},
				cli.StringFlag{Name: "correo"},
			},
			Action: func(c *cli.Context) error {
				return authScreen.Register(ctx, console.RegisterForm{
					Username:        c.String("usuario"),
					Password:        c.String("password"),
					ConfirmPassword: c.String("confirmar"),
					NombreCompleto:  c.String("nombre"),
					Telefono:        c.String("telefono"),
					Correo:          c.String("correo"),
				})
			},
		},
		{
			Name:  "groups",
			Usage: "gestión de grupos (solo administrador)",
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "listar grupos",
					Action: func(c *cli.Context) error {
						return groupsScreen.List(ctx)
					},
				},
				{
					Name:  "create",
					Usage: "crear un grupo",
					Flags: groupFlags(),
					Action: func(c *cli.Context) error {
						return groupsScreen.Create(ctx, groupForm(c))
					},
				},
				{
					Name:  "update",
					Usage: "actualizar un grupo",
					Flags: append(groupFlags(), cli.IntFlag{Name: "id"}),
					Action: func(c *cli.Context) error {
						return groupsScreen.Update(ctx, c.Int("id"), groupForm(c))
					},
				},
				{
					Name:  "delete",
					Usage: "eliminar un grupo",
					Flags: []cli.Flag{cli.IntFlag{Name: "id"}},
					Action: func(c *cli.Context) error {
						return groupsScreen.Delete(ctx, c.Int("id"))
					},
				},
			},
		},
		{
			Name:  "events",
			Usage: "gestión de eventos",
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "listar eventos con filtros locales",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "estado", Usage: "PROXIMAMENTE | EN_EJECUCION | FINALIZADO"},
						cli.StringFlag{Name: "buscar", Usage: "búsqueda por título, tipo o creador"},
						cli.BoolFlag{Name: "proximos", Usage: "solo eventos próximos"},
						cli.BoolFlag{Name: "mios", Usage: "solo mis eventos"},
						cli.StringFlag{Name: "creador"},
						cli.StringFlag{Name: "tipo"},
					},
					Action: func(c *cli.Context) error {
						opts := console.EventListOptions{
							Scope:   console.ScopeAll,
							Status:  domain.EventStatus(c.String("estado")),
							Search:  c.String("buscar"),
							Creator: c.String("creador"),
							Type:    c.String("tipo"),
						}
						if c.Bool("proximos") {
							opts.Scope = console.ScopeUpcoming
						}
						if c.Bool("mios") {
							opts.Scope = console.ScopeMine
						}
						return eventsScreen.List(ctx, opts)
					},
				},
				{
					Name:  "create",
					Usage: "crear un evento",
					Flags: eventFlags(),
					Action: func(c *cli.Context) error {
						form, err := eventForm(c)
						if err != nil {
							return err
						}
						return eventsScreen.Create(ctx, form)
					},
				},
				{
					Name:  "update",
					Usage: "actualizar un evento",
					Flags: append(eventFlags(), cli.IntFlag{Name: "id"}),
					Action: func(c *cli.Context) error {
						form, err := eventForm(c)
						if err != nil {
							return err
						}
						return eventsScreen.Update(ctx, c.Int("id"), form)
					},
				},
				{
					Name:  "status",
					Usage: "cambiar el estado de un evento",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "titulo"},
						cli.StringFlag{Name: "creador"},
						cli.StringFlag{Name: "estado"},
					},
					Action: func(c *cli.Context) error {
						return eventsScreen.SetStatus(ctx, c.String("titulo"), c.String("creador"), domain.EventStatus(c.String("estado")))
					},
				},
				{
					Name:  "delete",
					Usage: "eliminar un evento",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "titulo"},
						cli.StringFlag{Name: "creador"},
					},
					Action: func(c *cli.Context) error {
						return eventsScreen.Delete(ctx, c.String("titulo"), c.String("creador"))
					},
				},
			},
		},
		{
			Name:  "types",
			Usage: "catálogo de tipos de evento",
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "listar tipos de evento",
					Action: func(c *cli.Context) error {
						return typesScreen.List(ctx)
					},
				},
				{
					Name:  "create",
					Usage: "crear un tipo de evento",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "nombre"},
						cli.StringFlag{Name: "descripcion"},
					},
					Action: func(c *cli.Context) error {
						return typesScreen.Create(ctx, console.TypeForm{
							Name:        c.String("nombre"),
							Description: c.String("descripcion"),
						})
					},
				},
				{
					Name:      "show",
					Usage:     "consultar un tipo por id o nombre",
					ArgsUsage: "<id|nombre>",
					Action: func(c *cli.Context) error {
						return typesScreen.Show(ctx, c.Args().First())
					},
				},
			},
		},
		{
			Name:  "admins",
			Usage: "administradores de grupo (solo administrador)",
			Subcommands: []cli.Command{
				{
					Name:  "list",
					Usage: "listar administradores de grupo",
					Flags: []cli.Flag{
						cli.BoolFlag{Name: "disponibles", Usage: "solo sin grupo asignado"},
					},
					Action: func(c *cli.Context) error {
						return adminsScreen.List(ctx, c.Bool("disponibles"))
					},
				},
				{
					Name:  "register",
					Usage: "registrar un administrador de grupo",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "usuario"},
						cli.StringFlag{Name: "password"},
						cli.StringFlag{Name: "nombre"},
						cli.StringFlag{Name: "apellido-paterno"},
						cli.StringFlag{Name: "apellido-materno"},
						cli.StringFlag{Name: "telefono"},
						cli.StringFlag{Name: "correo"},
					},
					Action: func(c *cli.Context) error {
						return adminsScreen.Register(ctx, console.AdminGroupForm{
							Username:        c.String("usuario"),
							Password:        c.String("password"),
							Nombre:          c.String("nombre"),
							ApellidoPaterno: c.String("apellido-paterno"),
							ApellidoMaterno: c.String("apellido-materno"),
							Telefono:        c.String("telefono"),
							Correo:          c.String("correo"),
						})
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		// Screens already printed the user-facing message; exit non-zero.
		log.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func groupFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "nombre"},
		cli.StringFlag{Name: "municipio"},
		cli.StringFlag{Name: "colonia"},
		cli.IntSliceFlag{Name: "miembro", Usage: "id de miembro; repetible"},
	}
}

func groupForm(c *cli.Context) console.GroupForm {
	return console.GroupForm{
		Name:          c.String("nombre"),
		Municipio:     c.String("municipio"),
		Colonia:       c.String("colonia"),
		SelectedUsers: c.IntSlice("miembro"),
	}
}

func eventFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "titulo"},
		cli.StringFlag{Name: "fecha", Usage: "2006-01-02 15:04 o RFC 3339"},
		cli.StringFlag{Name: "tipo", Usage: "nombre del tipo de evento"},
		cli.StringFlag{Name: "descripcion"},
	}
}

func eventForm(c *cli.Context) (console.EventForm, error) {
	date, err := parseEventDate(c.String("fecha"))
	if err != nil {
		return console.EventForm{}, err
	}
	return console.EventForm{
		Title:       c.String("titulo"),
		Date:        date,
		TypeName:    c.String("tipo"),
		Description: c.String("descripcion"),
	}, nil
}

func parseEventDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil // caught by form validation
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}
