// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"
)

// Validation limits for entity fields.
const (
	maxNameLen     = 255
	maxTitleLen    = 255
	maxUsernameLen = 150
	maxEmailLen    = 255
)

// fieldErrors collects every validation failure keyed by field name, so a
// single response reports all problems at once.
type fieldErrors map[string][]string

func (fe fieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// respond writes the collected violations as a 400 response. The body is
// the field-to-messages map itself.
func (fe fieldErrors) respond(w http.ResponseWriter) {
	respondJSON(w, http.StatusBadRequest, fe)
}

// categoryInput is the writable category payload.
type categoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (in *categoryInput) validate() fieldErrors {
	fe := fieldErrors{}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		fe.add("name", "This field is required.")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		fe.add("name", "Ensure this field has no more than 255 characters.")
	}
	return fe
}

// postInput is the writable post payload. Author is ignored on create
// (the caller identity wins) and required on full update.
type postInput struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Published bool    `json:"published"`
	Author    *string `json:"author"`
}

func (in *postInput) validate() fieldErrors {
	fe := fieldErrors{}
	if strings.TrimSpace(in.Title) == "" {
		fe.add("title", "This field is required.")
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLen {
		fe.add("title", "Ensure this field has no more than 255 characters.")
	}
	if strings.TrimSpace(in.Content) == "" {
		fe.add("content", "This field is required.")
	}
	return fe
}

// commentInput is the writable comment payload. Post and author travel as
// bare identifiers.
type commentInput struct {
	Post    string `json:"post"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (in *commentInput) validate() fieldErrors {
	fe := fieldErrors{}
	if strings.TrimSpace(in.Content) == "" {
		fe.add("content", "This field is required.")
	}
	if in.Post == "" {
		fe.add("post", "This field is required.")
	} else if !validUUID(in.Post) {
		fe.add("post", "Must be a valid UUID.")
	}
	if in.Author == "" {
		fe.add("author", "This field is required.")
	} else if !validUUID(in.Author) {
		fe.add("author", "Must be a valid UUID.")
	}
	return fe
}

// registerInput is the sign-up payload for the auth subsystem.
type registerInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

func (in *registerInput) validate() fieldErrors {
	fe := fieldErrors{}
	username := strings.TrimSpace(in.Username)
	if username == "" {
		fe.add("username", "This field is required.")
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		fe.add("username", "Ensure this field has no more than 150 characters.")
	}
	if utf8.RuneCountInString(in.Email) > maxEmailLen {
		fe.add("email", "Ensure this field has no more than 255 characters.")
	}
	if in.Password == "" {
		fe.add("password", "This field is required.")
	}
	return fe
}
