// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xviper provides the standard bootstrap for viper-based configuration in command line tools.
*/
package xviper
