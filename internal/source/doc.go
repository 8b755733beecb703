// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source defines the origins external configuration is read from.
//
// Every source is a properties file. The variants differ only in how the file
// path is found:
//   - [NewFileSource]: an explicit path;
//   - [NewUserHomeSource]: a fixed path under the user's home directory;
//   - [NewEnvVarSource]: a path held by an environment variable;
//   - [NewSystemPropertySource]: a path held by a process property.
//
// [DefaultProvider] orders them by precedence, lowest first: user home,
// environment variable, process property.
package source
