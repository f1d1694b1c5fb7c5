// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tasksync command line application.
//
// It wires configuration, logging, the Todoist sync client, the response
// store and the task service into cobra commands that sync once and print
// the answer.
package client
