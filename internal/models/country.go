package models

// Countries is the fixed list offered by the onboarding country picker.
var Countries = []string{
	"Argentina",
	"Australia",
	"Austria",
	"Belgium",
	"Brazil",
	"Canada",
	"Chile",
	"China",
	"Colombia",
	"Croatia",
	"Czech Republic",
	"Denmark",
	"Egypt",
	"Finland",
	"France",
	"Germany",
	"Greece",
	"Hungary",
	"Iceland",
	"India",
	"Indonesia",
	"Ireland",
	"Israel",
	"Italy",
	"Japan",
	"Kenya",
	"Malaysia",
	"Mexico",
	"Morocco",
	"Netherlands",
	"New Zealand",
	"Norway",
	"Peru",
	"Philippines",
	"Poland",
	"Portugal",
	"Singapore",
	"South Africa",
	"South Korea",
	"Spain",
	"Sweden",
	"Switzerland",
	"Thailand",
	"Turkey",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
	"Vietnam",
}
