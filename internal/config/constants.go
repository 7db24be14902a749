package config

import "time"

// Base application details
const AppName = "postfmt"
const ConfigDirName = "postfmt"
const ThemesDirName = "themes"
const DraftsDirName = "drafts"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "postfmt.log"
const DefaultExportFileName = "post.md"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
const DefaultHistoryLimit = 500

// Post defaults
const DefaultFoldLimit = 210
const DefaultMaxSuggestions = 8
const DefaultMaxTags = 8
const DefaultHashtags = "#technology #softwareengineering #ai"

// Theme defaults
const DefaultDarkTheme = "Postfmt Dark"
const DefaultLightTheme = "Postfmt Light"
