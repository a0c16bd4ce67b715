package booking

import (
	"bytes"
	"html/template"
	"log"
)

// serviceLabels maps the form's service codes to display names used in
// event subjects and emails.
var serviceLabels = map[string]string{
	"ai-solutions": "AI Solutions Consultation",
	"automation":   "Automation Services",
	"development":  "Custom Development",
	"analytics":    "Data Analytics",
	"creative":     "Creative Tech",
	"innovation":   "Innovation Lab",
	"internship":   "Internship Program",
	"accelerator":  "Technical Accelerator",
	"other":        "General Consultation",
}

// ServiceLabel resolves a service code to its display name. Unknown codes
// pass through verbatim; an empty code becomes "Consultation".
func ServiceLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}
	if code != "" {
		return code
	}
	return "Consultation"
}

var eventBodyTemplate = template.Must(template.New("event").Parse(`<h2>Consultation Appointment</h2>
<p><strong>Client:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Service Interest:</strong> {{.Label}}</p>
{{if .Message}}<p><strong>Notes:</strong> {{.Message}}</p>{{end}}
<hr>
<p><em>Booked via {{.SiteURL}}</em></p>
`))

// eventBody renders the calendar event description. Submission fields are
// user-controlled, so they go through html/template escaping.
func eventBody(sub Submission, label, siteURL string) string {
	phone := sub.Phone
	if phone == "" {
		phone = "Not provided"
	}
	var buf bytes.Buffer
	err := eventBodyTemplate.Execute(&buf, struct {
		Name, Email, Phone, Label, Message, SiteURL string
	}{sub.Name, sub.Email, phone, label, sub.Message, siteURL})
	if err != nil {
		log.Printf("event body render failed: %v", err)
		return "Consultation Appointment"
	}
	return buf.String()
}
