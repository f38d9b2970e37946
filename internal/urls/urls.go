// Package urls collects documentation URLs for guides and troubleshooting.
// All URLs point to the documentation site at https://gogevgelija.github.io/ggadmin/
package urls

// GettingStarted is the quick start guide for connecting the client
// to an admin backend.
const GettingStarted = "https://gogevgelija.github.io/ggadmin/getting-started/"

// LanguageSetup explains how to configure the form language list and the
// tab keyboard shortcuts.
const LanguageSetup = "https://gogevgelija.github.io/ggadmin/languages/"

// BackendSetup is the guide for running and announcing the admin backend,
// including mDNS discovery requirements.
const BackendSetup = "https://gogevgelija.github.io/ggadmin/backend-setup/"

// TroubleshootingGuide provides solutions to common connectivity and
// validation issues.
const TroubleshootingGuide = "https://gogevgelija.github.io/ggadmin/troubleshooting/"
