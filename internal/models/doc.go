// Package models provides functionality for listing the OpenAI chat
// models available with the configured API key, to help users pick a
// model for POS tagging.
package models
