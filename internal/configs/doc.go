// Package configs loads the secrets settings for a project.
//
// Settings come from one of two files at the project root:
//
//   - .stagecrypt.toml, owned by stagecrypt:
//
//     [secrets]
//     local_path = "secrets"
//     format = "age"
//     armor = false
//     work_factor = 18
//     preflight_event = "before:deploy:cleanup"
//     audit = true
//
//   - serverless.yml (or .yaml), the deploy host's manifest, with the same
//     settings under custom.pluginConfig.secrets in camelCase (localPath,
//     format, armor, workFactor, preflightEvent, audit).
//
// The local path key is required in both. An empty value means the secrets
// live at the project root; a missing key is ErrConfiguration, reported
// before any file is opened.
//
// FindProjectRoot walks up from the working directory to the first directory
// containing either file.
package configs
