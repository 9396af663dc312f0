package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ep-bau/ep-system/internal/domain/authz"
)

// RouterDeps bündelt die Handler für die Routenregistrierung.
type RouterDeps struct {
	JWTSecret string

	Auth           *AuthHandler
	Ware           *WareHandler
	Lager          *LagerHandler
	Kassa          *KassaHandler
	Kategorie      *KategorieHandler
	Projekt        *ProjektHandler
	Anfrage        *AnfrageHandler
	Kunde          *KundeHandler
	Subunternehmer *SubunternehmerHandler
	Benutzer       *BenutzerHandler
	Aufgabe        *AufgabeHandler
	Ticket         *TicketHandler
	Dashboard      *DashboardHandler
}

// Router registriert alle Routen. Öffentlich sind nur Login, das
// Anfrageformular samt Kategorielesen, der Support-Eingang und der
// Kassa-Webhook (eigene Authentifizierung über x-api-key).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// öffentliche Routen
	api.Post("/auth/login", deps.Auth.Login)
	api.Post("/terminal/login", deps.Auth.TerminalLogin)
	api.Post("/kassa/webhook", deps.Kassa.Webhook)
	api.Post("/anfragen", deps.Anfrage.Create)
	api.Post("/support", deps.Ticket.Create)
	api.Get("/kategorien", deps.Kategorie.Tree)
	api.Get("/kategorien/felder", deps.Kategorie.Felder)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", deps.Auth.Me)

	// Die Übersicht sieht jeder angemeldete Benutzer.
	protected.Get("/dashboard", deps.Dashboard.Overview)

	waren := protected.Group("/waren")
	waren.Get("/", RequirePermission(authz.ActionView, authz.ResWaren), deps.Ware.List)
	waren.Get("/suche", RequirePermission(authz.ActionView, authz.ResWaren), deps.Ware.Search)
	waren.Get("/barcode/:code", RequirePermission(authz.ActionView, authz.ResWaren), deps.Ware.GetByBarcode)
	waren.Get("/:id", RequirePermission(authz.ActionView, authz.ResWaren), deps.Ware.GetByID)
	waren.Post("/", RequirePermission(authz.ActionManage, authz.ResWaren), deps.Ware.Create)
	waren.Put("/:id", RequirePermission(authz.ActionManage, authz.ResWaren), deps.Ware.Update)
	waren.Delete("/:id", RequirePermission(authz.ActionManage, authz.ResWaren), deps.Ware.Delete)

	// Bewegungen bucht jeder angemeldete Benutzer (Terminal-Workflow);
	// die Protokolleinsicht bleibt auf Leitungs- und Lagerpositionen beschränkt.
	lager := protected.Group("/lager")
	lager.Post("/bewegungen", deps.Lager.RecordMovement)
	lager.Get("/protokoll", RequirePermission(authz.ActionView, authz.ResProtokoll), deps.Lager.Protokoll)

	kassen := protected.Group("/kassen", RequirePermission(authz.ActionManage, authz.ResKassa))
	kassen.Post("/", deps.Kassa.Create)
	kassen.Get("/", deps.Kassa.List)
	kassen.Get("/:id", deps.Kassa.GetByID)
	kassen.Get("/:id/verkaeufe", deps.Kassa.Sales)
	kassen.Post("/:id/rotate", deps.Kassa.RotateKey)
	kassen.Delete("/:id", deps.Kassa.Delete)

	kategorien := protected.Group("/kategorien", RequirePermission(authz.ActionManage, authz.ResKategorien))
	kategorien.Post("/", deps.Kategorie.Create)
	kategorien.Put("/:id", deps.Kategorie.Update)
	kategorien.Delete("/:id", deps.Kategorie.Delete)

	projekte := protected.Group("/projekte")
	projekte.Get("/", RequirePermission(authz.ActionView, authz.ResProjekte), deps.Projekt.List)
	projekte.Get("/:id", RequirePermission(authz.ActionView, authz.ResProjekte), deps.Projekt.GetByID)
	projekte.Get("/:id/etappen", RequirePermission(authz.ActionView, authz.ResProjekte), deps.Projekt.Etappen)
	projekte.Get("/:id/dokumente", RequirePermission(authz.ActionView, authz.ResProjekte), deps.Projekt.Dokumente)
	// Berichtserzeugung ist ein POST: serverseitig wird geladen und gerendert.
	projekte.Post("/:id/bericht", RequirePermission(authz.ActionView, authz.ResBerichte), deps.Projekt.Bericht)
	projekte.Post("/", RequirePermission(authz.ActionManage, authz.ResProjekte), deps.Projekt.Create)
	projekte.Put("/:id", RequirePermission(authz.ActionManage, authz.ResProjekte), deps.Projekt.Update)
	projekte.Delete("/:id", RequirePermission(authz.ActionManage, authz.ResProjekte), deps.Projekt.Delete)
	projekte.Post("/:id/etappen", RequirePermission(authz.ActionManage, authz.ResProjekte), deps.Projekt.CreateEtappe)
	projekte.Put("/:id/etappen/:etappeId", RequirePermission(authz.ActionManage, authz.ResProjekte), deps.Projekt.UpdateEtappe)
	projekte.Delete("/:id/etappen/:etappeId", RequirePermission(authz.ActionManage, authz.ResProjekte), deps.Projekt.DeleteEtappe)
	projekte.Post("/:id/dokumente", RequirePermission(authz.ActionManage, authz.ResProjekte), deps.Projekt.AddDokument)
	projekte.Delete("/:id/dokumente/:dokumentId", RequirePermission(authz.ActionManage, authz.ResProjekte), deps.Projekt.DeleteDokument)

	anfragen := protected.Group("/anfragen")
	anfragen.Get("/", RequirePermission(authz.ActionView, authz.ResAnfragen), deps.Anfrage.List)
	anfragen.Get("/:id", RequirePermission(authz.ActionView, authz.ResAnfragen), deps.Anfrage.GetByID)
	anfragen.Put("/:id/status", RequirePermission(authz.ActionManage, authz.ResAnfragen), deps.Anfrage.UpdateStatus)
	anfragen.Post("/:id/convert", RequirePermission(authz.ActionManage, authz.ResAnfragen), deps.Anfrage.Convert)
	anfragen.Delete("/:id", RequirePermission(authz.ActionManage, authz.ResAnfragen), deps.Anfrage.Delete)

	kunden := protected.Group("/kunden")
	kunden.Get("/", RequirePermission(authz.ActionView, authz.ResKunden), deps.Kunde.List)
	kunden.Get("/:id", RequirePermission(authz.ActionView, authz.ResKunden), deps.Kunde.GetByID)
	kunden.Post("/", RequirePermission(authz.ActionManage, authz.ResKunden), deps.Kunde.Create)
	kunden.Put("/:id", RequirePermission(authz.ActionManage, authz.ResKunden), deps.Kunde.Update)
	kunden.Delete("/:id", RequirePermission(authz.ActionManage, authz.ResKunden), deps.Kunde.Delete)

	subunternehmer := protected.Group("/subunternehmer")
	subunternehmer.Get("/", RequirePermission(authz.ActionView, authz.ResSubunternehmer), deps.Subunternehmer.List)
	subunternehmer.Get("/:id", RequirePermission(authz.ActionView, authz.ResSubunternehmer), deps.Subunternehmer.GetByID)
	subunternehmer.Post("/", RequirePermission(authz.ActionManage, authz.ResSubunternehmer), deps.Subunternehmer.Create)
	subunternehmer.Put("/:id", RequirePermission(authz.ActionManage, authz.ResSubunternehmer), deps.Subunternehmer.Update)
	subunternehmer.Delete("/:id", RequirePermission(authz.ActionManage, authz.ResSubunternehmer), deps.Subunternehmer.Delete)

	benutzer := protected.Group("/benutzer", RequirePermission(authz.ActionManage, authz.ResBenutzer))
	benutzer.Post("/", deps.Benutzer.Create)
	benutzer.Get("/", deps.Benutzer.List)
	benutzer.Get("/:id", deps.Benutzer.GetByID)
	benutzer.Put("/:id", deps.Benutzer.Update)
	benutzer.Delete("/:id", deps.Benutzer.Delete)

	aufgaben := protected.Group("/aufgaben")
	aufgaben.Get("/", RequirePermission(authz.ActionView, authz.ResAufgaben), deps.Aufgabe.List)
	aufgaben.Get("/:id", RequirePermission(authz.ActionView, authz.ResAufgaben), deps.Aufgabe.GetByID)
	aufgaben.Post("/", RequirePermission(authz.ActionManage, authz.ResAufgaben), deps.Aufgabe.Create)
	aufgaben.Put("/:id", RequirePermission(authz.ActionManage, authz.ResAufgaben), deps.Aufgabe.Update)
	aufgaben.Delete("/:id", RequirePermission(authz.ActionManage, authz.ResAufgaben), deps.Aufgabe.Delete)

	tickets := protected.Group("/tickets", RequirePermission(authz.ActionManage, authz.ResSupport))
	tickets.Get("/", deps.Ticket.List)
	tickets.Get("/:id", deps.Ticket.GetByID)
	tickets.Put("/:id/status", deps.Ticket.UpdateStatus)
	tickets.Delete("/:id", deps.Ticket.Delete)
}
