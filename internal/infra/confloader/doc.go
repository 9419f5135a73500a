// Package confloader provides configuration loading for SkillShare.
//
// It uses Koanf for layered configuration from multiple sources with
// priority: Flag > Env > File > Default, plus an fsnotify-based
// watcher so a running `skillshare-cli notifications --follow` picks
// up config edits without a restart.
package confloader
