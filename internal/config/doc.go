// Package config defines the deployment configuration for the OpenClaw
// installer.
//
// A [Deployment] is created once per run from user input merged with
// platform defaults and is immutable afterwards. All later stages
// (staging, manifest generation, launch) receive it explicitly instead
// of reading ambient process state.
package config
