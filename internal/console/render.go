package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

func renderGroups(out io.Writer, groups []domain.Group) {
	if len(groups) == 0 {
		fmt.Fprintln(out, "No hay grupos registrados.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tMUNICIPIO\tCOLONIA\tMIEMBROS")
	for _, g := range groups {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", g.ID, g.Name, g.Municipio, g.Colonia, len(g.Users))
	}
	w.Flush()
}

func renderEvents(out io.Writer, events []domain.Event) {
	if len(events) == 0 {
		fmt.Fprintln(out, "No hay eventos que mostrar.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TÍTULO\tFECHA\tTIPO\tESTADO\tCREADOR")
	for _, e := range events {
		date := ""
		if !e.EventDate.IsZero() {
			date = e.EventDate.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Title, date, e.EventType, e.Status.Label(), e.CreatorUsername)
	}
	w.Flush()
}

func renderTypes(out io.Writer, types []domain.EventType) {
	if len(types) == 0 {
		fmt.Fprintln(out, "No hay tipos de evento registrados.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tDESCRIPCIÓN")
	for _, t := range types {
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.ID, t.Name, t.Description)
	}
	w.Flush()
}

func renderUsers(out io.Writer, users []domain.User) {
	if len(users) == 0 {
		fmt.Fprintln(out, "No hay usuarios que mostrar.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSUARIO\tNOMBRE\tCORREO\tROL\tGRUPO")
	for _, u := range users {
		group := "-"
		if u.HasGroup() {
			group = "sí"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.NombreCompleto, u.Correo, u.Role(), group)
	}
	w.Flush()
}
