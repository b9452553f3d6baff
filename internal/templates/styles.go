// Package templates maps a template identifier and accent color to the fixed
// bundle of style attributes the preview renderer applies. Pure lookup, no
// state.
package templates

import "strings"

// Style is the class/color bundle for one template. Class strings are
// utility-CSS lists consumed verbatim by the renderer.
type Style struct {
	Container         string
	Header            string
	SectionTitle      string
	SectionTitleColor string
	ItemTitle         string
	ItemSubtitle      string
	ItemSubtitleColor string
	BodyText          string
}

// Default is the template used when an unknown identifier is requested.
const Default = "Modern"

const defaultPrimary = "#4f46e5"

// Styles returns the bundle for the given template identifier. Gradient
// theme literals fall back to the default primary for single-color slots.
// Unknown identifiers resolve to the Modern bundle.
func Styles(template, themeColor string) Style {
	color := themeColor
	if color == "" {
		color = defaultPrimary
	}
	primary := color
	if strings.Contains(color, "gradient") {
		primary = defaultPrimary
	}

	table := map[string]Style{
		"GooglePro": {
			Container:         "bg-white text-black p-12 w-full min-h-[1100px] font-sans leading-normal",
			Header:            "mb-6 text-center border-b border-gray-100 pb-6",
			SectionTitle:      "text-[11px] font-bold uppercase tracking-[0.1em] border-b border-gray-200 mb-3 pb-0.5",
			SectionTitleColor: primary,
			ItemTitle:         "text-sm font-bold text-black",
			ItemSubtitle:      "text-xs font-bold",
			ItemSubtitleColor: primary,
			BodyText:          "text-xs text-gray-800 leading-relaxed",
		},
		"MetaModern": {
			Container:         "bg-white text-slate-900 p-16 w-full min-h-[1100px] font-sans",
			Header:            "mb-14",
			SectionTitle:      "text-[10px] font-black uppercase tracking-[0.4em] mb-8",
			SectionTitleColor: "#cbd5e1",
			ItemTitle:         "text-xl font-black text-slate-900",
			ItemSubtitle:      "text-sm font-bold",
			ItemSubtitleColor: primary,
			BodyText:          "text-sm text-slate-600 leading-loose",
		},
		"IBMProfessional": {
			Container:         "bg-white text-gray-900 p-14 w-full min-h-[1100px] font-sans",
			Header:            "mb-10 grid grid-cols-2 items-end border-b-2 border-gray-900 pb-6",
			SectionTitle:      "text-xs font-black uppercase tracking-[0.2em] bg-gray-900 text-white px-3 py-1 mb-6 inline-block",
			ItemTitle:         "text-base font-black text-gray-900",
			ItemSubtitle:      "text-xs font-black uppercase tracking-wider",
			ItemSubtitleColor: "#64748b",
			BodyText:          "text-xs text-gray-700 leading-relaxed font-medium",
		},
		"FAANG": {
			Container:         "bg-white text-black p-12 w-full min-h-[1100px] font-sans",
			Header:            "mb-8 border-b border-black pb-4",
			SectionTitle:      "text-sm font-bold uppercase tracking-widest text-black border-b border-gray-200 mb-4 pb-1",
			SectionTitleColor: primary,
			ItemTitle:         "text-base font-bold text-black",
			ItemSubtitle:      "text-sm font-medium text-black",
			ItemSubtitleColor: "#000000",
			BodyText:          "text-sm leading-relaxed text-slate-600",
		},
		"Enterprise": {
			Container:         "bg-white text-slate-900 p-14 w-full min-h-[1100px] font-sans",
			Header:            "mb-10",
			SectionTitle:      "text-[11px] font-black uppercase tracking-[0.3em] mb-6 border-l-4 pl-4",
			SectionTitleColor: primary,
			ItemTitle:         "text-lg font-bold text-slate-900",
			ItemSubtitle:      "text-sm font-bold",
			ItemSubtitleColor: "#64748b",
			BodyText:          "text-sm leading-relaxed text-slate-600",
		},
		"Minimalist": {
			Container:         "bg-white text-slate-900 p-12 w-full min-h-[1100px] font-sans",
			Header:            "mb-12 border-l-4 pl-6 border-slate-900",
			SectionTitle:      "text-xs font-black uppercase tracking-[0.3em] mb-6 text-slate-400",
			SectionTitleColor: "#94a3b8",
			ItemTitle:         "text-lg font-bold text-slate-900",
			ItemSubtitle:      "text-sm text-slate-500 font-medium",
			ItemSubtitleColor: "#64748b",
			BodyText:          "text-sm leading-relaxed text-slate-600",
		},
		"Executive": {
			Container:         "bg-white text-slate-900 p-16 w-full min-h-[1100px] font-serif",
			Header:            "text-center mb-16 border-b pb-12",
			SectionTitle:      "text-sm font-bold uppercase tracking-widest border-b-2 border-slate-900 mb-8 inline-block text-slate-900",
			SectionTitleColor: primary,
			ItemTitle:         "text-xl font-bold text-slate-900",
			ItemSubtitle:      "text-sm italic text-slate-600",
			ItemSubtitleColor: "#475569",
			BodyText:          "text-sm leading-relaxed text-slate-600",
		},
		"Classic": {
			Container:         "bg-white text-slate-900 p-12 w-full min-h-[1100px]",
			Header:            "mb-10 text-center",
			SectionTitle:      "text-base font-bold border-b border-slate-200 mb-6 pb-2 text-slate-900",
			SectionTitleColor: primary,
			ItemTitle:         "text-base font-bold text-slate-900",
			ItemSubtitle:      "text-sm font-medium",
			ItemSubtitleColor: "#475569",
			BodyText:          "text-sm leading-relaxed text-slate-600",
		},
		"Modern": {
			Container:         "bg-white text-slate-900 p-12 w-full min-h-[1100px] font-sans",
			Header:            "mb-12 flex flex-col gap-2",
			SectionTitle:      "text-[10px] font-black uppercase tracking-[0.4em] mb-6 text-slate-900",
			SectionTitleColor: "#0f172a",
			ItemTitle:         "text-lg font-black text-slate-900",
			ItemSubtitle:      "text-sm font-bold",
			ItemSubtitleColor: primary,
			BodyText:          "text-sm leading-relaxed text-slate-600",
		},
		"ExecutiveStyle": {
			Container:         "bg-white shadow-2xl mx-auto p-12 min-h-[1056px] w-[816px] flex flex-col gap-6 text-slate-800 font-serif overflow-hidden",
			Header:            "text-center border-b-2 border-slate-900 pb-4",
			SectionTitle:      "text-sm font-bold border-b border-slate-300 mb-2 uppercase tracking-[0.2em] font-sans",
			SectionTitleColor: primary,
			ItemTitle:         "flex justify-between font-bold text-sm",
			ItemSubtitle:      "italic text-[12px] mb-1 text-slate-600",
			BodyText:          "text-[12px] leading-relaxed whitespace-pre-line text-slate-700 font-sans",
		},
		"ModernStyle": {
			Container:         "bg-white shadow-2xl mx-auto min-h-[1056px] w-[816px] flex text-slate-800 font-sans overflow-hidden",
			Header:            "w-1/3 bg-slate-900 p-8 flex flex-col gap-8 text-white",
			SectionTitle:      "text-[10px] font-black uppercase tracking-[0.2em] text-blue-400 mb-4",
			SectionTitleColor: "#3b82f6",
			ItemTitle:         "font-bold text-slate-900 text-[15px]",
			ItemSubtitle:      "text-sm font-bold text-blue-600 mb-2",
			BodyText:          "text-xs leading-relaxed text-slate-500 whitespace-pre-line",
		},
		"CleanStyle": {
			Container:         "bg-white shadow-2xl mx-auto p-16 min-h-[1056px] w-[816px] flex flex-col gap-10 text-slate-800 font-sans overflow-hidden",
			Header:            "flex justify-between items-end border-b-4 border-slate-100 pb-8",
			SectionTitle:      "text-[10px] font-black uppercase tracking-[0.4em] text-slate-300 mb-4",
			SectionTitleColor: "#cbd5e1",
			ItemTitle:         "font-black text-slate-900 text-lg mb-0.5",
			ItemSubtitle:      "text-xs font-bold text-slate-400 mb-3 tracking-widest uppercase",
			BodyText:          "text-[13px] text-slate-500 leading-relaxed font-light",
		},
	}

	if s, ok := table[template]; ok {
		return s
	}
	return table[Default]
}

// Info describes a template for pickers.
type Info struct {
	Name        string
	Description string
	Category    string
}

// Metadata lists every supported template identifier.
var Metadata = map[string]Info{
	"GooglePro":       {Name: "Google Pro", Description: "Clean and professional Google-style template", Category: "Corporate"},
	"MetaModern":      {Name: "Meta Modern", Description: "Modern tech-focused template", Category: "Tech"},
	"IBMProfessional": {Name: "IBM Professional", Description: "Corporate professional template", Category: "Corporate"},
	"FAANG":           {Name: "FAANG", Description: "Optimized for big tech companies", Category: "Tech"},
	"Enterprise":      {Name: "Enterprise", Description: "Enterprise-level professional template", Category: "Corporate"},
	"Minimalist":      {Name: "Minimalist", Description: "Clean and simple design", Category: "Minimal"},
	"Executive":       {Name: "Executive", Description: "Elegant executive template", Category: "Executive"},
	"Classic":         {Name: "Classic", Description: "Timeless classic design", Category: "Classic"},
	"Modern":          {Name: "Modern", Description: "Contemporary modern template", Category: "Modern"},
	"ExecutiveStyle":  {Name: "Executive Elite", Description: "Professional executive template with serif typography", Category: "Executive"},
	"ModernStyle":     {Name: "Modern Dual", Description: "Two-column modern template with dark sidebar", Category: "Modern"},
	"CleanStyle":      {Name: "Clean Pro", Description: "Minimalist clean professional template", Category: "Minimal"},
}

// All returns every known template identifier.
func All() []string {
	out := make([]string, 0, len(Metadata))
	for k := range Metadata {
		out = append(out, k)
	}
	return out
}

// ByCategory returns the identifiers whose metadata matches the category.
func ByCategory(category string) []string {
	out := []string{}
	for k, m := range Metadata {
		if m.Category == category {
			out = append(out, k)
		}
	}
	return out
}

// Description returns the description for a template, or a generic one.
func Description(template string) string {
	if m, ok := Metadata[template]; ok {
		return m.Description
	}
	return "Resume template"
}
