// Package django is the scaffolder extension that turns a new project into a
// Django application. It runs `django-admin startproject`, moves the result
// into the src/<package> layout, points the sqlite database outside the
// installable package, and adds a manage.py wrapper and an ignore rule.
//
// Activate inserts the extension's actions into the host pipeline:
//
//	enforce_options  next to get_default_options
//	create_django    before apply_update_rules
//	instruct_user    before report_done
package django
