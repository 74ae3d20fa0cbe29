// Copyright (c) 2026 The buddy-go authors
//
// MIT License

//go:build debug
// +build debug

package buddy

import "github.com/sirupsen/logrus"

const _DEBUG bool = true
const _LOGLEVEL int = 1

var blog = logrus.WithField("pkg", "buddy")

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}
