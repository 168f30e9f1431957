// @title           jobsfi API
// @version         1.0
// @description     API джоб-борда с ранним доступом к вакансиям по подписке.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "jobsfi_backend/internal/app"

func main() {
	app.Run()
}
