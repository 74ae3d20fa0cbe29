// Copyright (c) 2026 The buddy-go authors
//
// MIT License

//go:build !debug
// +build !debug

package buddy

import "github.com/sirupsen/logrus"

const _DEBUG bool = false
const _LOGLEVEL int = 0

var blog = logrus.WithField("pkg", "buddy")
